// Package fileutil provides atomic file write helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// OwnerReadWrite is the mode given to every file written through TempContext.
const OwnerReadWrite = 0o600

// TempContext holds state for an atomic file write operation.
type TempContext struct {
	OutPath string
	TmpFile *os.File
	TmpName string
}

// NewTempContext creates a temp file next to outPath for atomic writing.
// Caller must defer CleanupOnError.
func NewTempContext(outPath string) (*TempContext, error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file for %q: %w", outPath, err)
	}

	return &TempContext{
		OutPath: outPath,
		TmpFile: tmpFile,
		TmpName: tmpFile.Name(),
	}, nil
}

// CleanupOnError closes the temp file and removes it if the write failed.
func (tc *TempContext) CleanupOnError(errp *error) {
	tc.TmpFile.Close() //nolint:gosec,errcheck // best-effort cleanup

	if *errp != nil {
		os.Remove(tc.TmpName) //nolint:gosec,errcheck // best-effort cleanup
	}
}

// Commit sets the final permissions, closes the temp file and renames it over OutPath.
// It returns the size of the committed file.
func (tc *TempContext) Commit() (int64, error) {
	if err := os.Chmod(tc.TmpName, OwnerReadWrite); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tc.TmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tc.TmpName, tc.OutPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	info, err := os.Stat(tc.OutPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", tc.OutPath, err)
	}

	return info.Size(), nil
}
