package domain

import (
	"fmt"
	"os"
	"path/filepath"
)

// UploadSelection is the file chosen for the next upload.
// Selecting another file replaces it.
type UploadSelection struct {
	// Path is the absolute path to the file.
	Path string

	// Name is the base name sent as the multipart file name.
	Name string

	// Size is the file size in bytes at selection time.
	Size int64
}

// NewUploadSelection stats path and returns a selection for it.
// Only existence and "is a regular file" are checked; type and size are not.
func NewUploadSelection(path string) (UploadSelection, error) {
	if path == "" {
		return UploadSelection{}, fmt.Errorf("%w: empty path", ErrInvalidInput)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return UploadSelection{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return UploadSelection{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !info.Mode().IsRegular() {
		return UploadSelection{}, fmt.Errorf("%w: %s is not a regular file", ErrInvalidInput, path)
	}

	return UploadSelection{
		Path: abs,
		Name: filepath.Base(abs),
		Size: info.Size(),
	}, nil
}

// IsZero reports whether nothing is selected.
func (s UploadSelection) IsZero() bool {
	return s.Path == ""
}
