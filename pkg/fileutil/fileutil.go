package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rohmanhakim/docs-toc/pkg/failure"
)

// GetFileExtension extracts the file extension from a path, or empty string if none
func GetFileExtension(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}

// StemName returns the base name of path without its last extension.
// "docs/guide.md" gives "guide".
func StemName(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// EnsureDir check if a given directory plus the following path exist, then create one if not
func EnsureDir(dir string, path ...string) failure.ClassifiedError {
	targetPath := []string{dir}
	targetPath = append(targetPath, path...)

	fullDir := filepath.Join(targetPath...)
	if err := os.MkdirAll(fullDir, 0755); err != nil {
		return &FileError{
			Message:   fmt.Sprintf("%v", err),
			Retryable: false,
			Cause:     ErrCausePathError,
			Path:      fullDir,
		}
	}
	return nil
}

// WriteFile writes content to path through a temporary file in the same
// directory and renames it into place, so a reader never sees a partial
// file. ENOSPC is reported as a retryable ErrCauseDiskFull.
func WriteFile(path string, content []byte) failure.ClassifiedError {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return classifyWriteError(path, err)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(content)
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmpName)
		return classifyWriteError(path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return classifyWriteError(path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return classifyWriteError(path, err)
	}
	return nil
}

func classifyWriteError(path string, err error) *FileError {
	if errors.Is(err, syscall.ENOSPC) {
		return &FileError{
			Message:   err.Error(),
			Retryable: true,
			Cause:     ErrCauseDiskFull,
			Path:      path,
		}
	}
	return &FileError{
		Message:   err.Error(),
		Retryable: false,
		Cause:     ErrCauseWriteFailure,
		Path:      path,
	}
}
