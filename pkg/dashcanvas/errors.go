package dashcanvas

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file is not json, yaml or xlsx.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// LoadError represents an error while reading a dataset or workbook.
type LoadError struct {
	Source    string
	Component string // "json", "yaml", "xlsx", "charts"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in %q (%s): %v", e.Source, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(source, component string, err error) *LoadError {
	return &LoadError{
		Source:    source,
		Component: component,
		Err:       err,
	}
}
