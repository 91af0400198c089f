// Package output writes formatted address blocks to the output text file.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// FileWriteError indicates the output file could not be created or written.
type FileWriteError struct {
	Path  string
	Cause error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("failed to write output file %s: %v", e.Path, e.Cause)
}

func (e *FileWriteError) Unwrap() error {
	return e.Cause
}

// Filename derives the output file name from the search location and the
// first SIC code. Characters are passed through as-is; callers own any
// sanitization.
func Filename(location, sicCode string) string {
	return fmt.Sprintf("%s_%s.txt", location, sicCode)
}

// WriteBlocks creates (or truncates) path and writes the blocks in order,
// separated by one blank line. Each block is expected to be
// newline-terminated, so joining with a single newline yields the separator.
// An empty block list produces an empty file.
func WriteBlocks(path string, blocks []string) error {
	f, err := os.Create(path)
	if err != nil {
		return &FileWriteError{Path: path, Cause: err}
	}

	if _, err := io.WriteString(f, strings.Join(blocks, "\n")); err != nil {
		_ = f.Close()
		return &FileWriteError{Path: path, Cause: err}
	}

	if err := f.Close(); err != nil {
		return &FileWriteError{Path: path, Cause: err}
	}

	return nil
}
