package storage

import "github.com/rohmanhakim/docs-toc/internal/metadata"

// Artifact is everything produced for one input page.
type Artifact struct {
	// Name is the output file stem, usually the input file name without
	// extension
	Name string
	// SourcePath is recorded with the artifacts, never written
	SourcePath string
	// Page is the rewritten page
	Page string
	// TOC is the table of contents block. Not written when empty.
	TOC string
	// Markdown is the table of contents as Markdown. Not written when empty.
	Markdown string
}

type WrittenFile struct {
	kind        metadata.ArtifactKind
	path        string
	contentHash string
}

func (f WrittenFile) Kind() metadata.ArtifactKind {
	return f.kind
}

func (f WrittenFile) Path() string {
	return f.path
}

func (f WrittenFile) ContentHash() string {
	return f.contentHash
}

// Persistence

type WriteResult struct {
	files []WrittenFile
}

func NewWriteResult(files []WrittenFile) WriteResult {
	return WriteResult{
		files: files,
	}
}

// Files returns the written files in write order: page, toc, markdown.
func (w WriteResult) Files() []WrittenFile {
	files := make([]WrittenFile, len(w.files))
	copy(files, w.files)
	return files
}

// Path returns the path of the written file of the given kind, or "".
func (w WriteResult) Path(kind metadata.ArtifactKind) string {
	for _, f := range w.files {
		if f.kind == kind {
			return f.path
		}
	}
	return ""
}
