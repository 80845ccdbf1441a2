package storage

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/rohmanhakim/docs-toc/internal/metadata"
	"github.com/rohmanhakim/docs-toc/pkg/failure"
	"github.com/rohmanhakim/docs-toc/pkg/fileutil"
	"github.com/rohmanhakim/docs-toc/pkg/hashutil"
)

/*
Responsibilities
- Persist rewritten pages and table of contents fragments
- Ensure deterministic filenames

Output Layout
- <outputDir>/<name>.html      rewritten page
- <outputDir>/<name>.toc.html  table of contents block
- <outputDir>/<name>.toc.md    table of contents as Markdown

Output Characteristics
- Idempotent writes
- Overwrite-safe reruns
*/

type Sink interface {
	Write(
		outputDir string,
		artifact Artifact,
		hashAlgo hashutil.HashAlgo,
	) (WriteResult, failure.ClassifiedError)
}

var _ Sink = (*LocalSink)(nil)

type LocalSink struct {
	metadataSink metadata.MetadataSink
}

func NewLocalSink(
	metadataSink metadata.MetadataSink,
) LocalSink {
	return LocalSink{
		metadataSink: metadataSink,
	}
}

func (s *LocalSink) Write(
	outputDir string,
	artifact Artifact,
	hashAlgo hashutil.HashAlgo,
) (WriteResult, failure.ClassifiedError) {
	writeResult, err := write(outputDir, artifact, hashAlgo)
	if err != nil {
		s.metadataSink.RecordError(
			time.Now(),
			"storage",
			"LocalSink.Write",
			mapStorageErrorToMetadataCause(err),
			err.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrSourcePath, artifact.SourcePath),
				metadata.NewAttr(metadata.AttrWritePath, err.Path),
			},
		)
		return WriteResult{}, err
	}
	for _, f := range writeResult.Files() {
		s.metadataSink.RecordArtifact(
			f.Kind(),
			f.Path(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrSourcePath, artifact.SourcePath),
				metadata.NewAttr(metadata.AttrContentHash, f.ContentHash()),
			},
		)
	}
	return writeResult, nil
}

func write(
	outputDir string,
	artifact Artifact,
	hashAlgo hashutil.HashAlgo,
) (WriteResult, *StorageError) {
	name := strings.TrimSpace(artifact.Name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return WriteResult{}, &StorageError{
			Message:   "artifact name must be a plain file name, got " + artifact.Name,
			Retryable: false,
			Cause:     ErrCauseInvalidName,
		}
	}

	if err := fileutil.EnsureDir(outputDir); err != nil {
		return WriteResult{}, fromFileError(err, outputDir)
	}

	pending := []struct {
		kind    metadata.ArtifactKind
		suffix  string
		content string
	}{
		{metadata.ArtifactPage, ".html", artifact.Page},
		{metadata.ArtifactTOC, ".toc.html", artifact.TOC},
		{metadata.ArtifactMarkdown, ".toc.md", artifact.Markdown},
	}

	var files []WrittenFile
	for _, p := range pending {
		// the page is always written, even when empty
		if p.content == "" && p.kind != metadata.ArtifactPage {
			continue
		}

		contentHash, err := hashutil.HashString(p.content, hashAlgo)
		if err != nil {
			return WriteResult{}, &StorageError{
				Message:   err.Error(),
				Retryable: false,
				Cause:     ErrCauseHashComputationFailed,
			}
		}

		fullPath := filepath.Join(outputDir, name+p.suffix)
		if err := fileutil.WriteFile(fullPath, []byte(p.content)); err != nil {
			return WriteResult{}, fromFileError(err, fullPath)
		}

		files = append(files, WrittenFile{
			kind:        p.kind,
			path:        fullPath,
			contentHash: contentHash,
		})
	}

	return NewWriteResult(files), nil
}

func fromFileError(err error, path string) *StorageError {
	var fileErr *fileutil.FileError
	if !errors.As(err, &fileErr) {
		return &StorageError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseWriteFailure,
			Path:      path,
		}
	}

	cause := ErrCauseWriteFailure
	switch fileErr.Cause {
	case fileutil.ErrCauseDiskFull:
		cause = ErrCauseDiskFull
	case fileutil.ErrCausePathError:
		cause = ErrCausePathError
	}
	return &StorageError{
		Message:   fileErr.Message,
		Retryable: fileErr.Retryable,
		Cause:     cause,
		Path:      path,
	}
}
