// Package source acquires the text to type from a file or a literal argument.
package source

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotRegular reports a path that exists but is not a regular file.
var ErrNotRegular = errors.New("not a regular file")

// AcquisitionError reports a text source that could not be read.
type AcquisitionError struct {
	Path string
	Err  error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("failed to read text from %s: %v", e.Path, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// Load returns the contents of the file named by arg when such a file exists,
// and arg itself otherwise.
func Load(arg string) (string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return arg, nil
	}
	if !info.Mode().IsRegular() {
		return "", &AcquisitionError{Path: arg, Err: ErrNotRegular}
	}
	return ReadFile(arg)
}

// ReadFile returns the contents of the file at path.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &AcquisitionError{Path: path, Err: err}
	}
	return string(data), nil
}
