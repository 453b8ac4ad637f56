package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for pipeline failures. Callers match with errors.Is.
var (
	ErrNotFound   = errors.New("map file not found")
	ErrFileFormat = errors.New("malformed map file")
	ErrSchema     = errors.New("map schema violation")
	ErrExport     = errors.New("graph export failed")
)

// FileError wraps a read failure with the offending path.
type FileError struct {
	Path    string
	Detail  string
	Wrapped error
}

func (e *FileError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Wrapped, e.Path)
	}
	return fmt.Sprintf("%s: %s: %s", e.Wrapped, e.Path, e.Detail)
}

func (e *FileError) Unwrap() error { return e.Wrapped }

// NewFileError creates a FileError around one of the file sentinels.
func NewFileError(path, detail string, wrapped error) *FileError {
	return &FileError{Path: path, Detail: detail, Wrapped: wrapped}
}

// SchemaError wraps ErrSchema with the offending element.
type SchemaError struct {
	Kind   string // "node" or "link"
	ID     string
	Detail string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s %q: %s", ErrSchema, e.Kind, e.ID, e.Detail)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// NewSchemaError creates a SchemaError.
func NewSchemaError(kind, id, detail string) *SchemaError {
	return &SchemaError{Kind: kind, ID: id, Detail: detail}
}

// ExportError wraps ErrExport and the store failure that caused it.
type ExportError struct {
	Kind string // "node" or "link"
	ID   string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%s: %s %q: %v", ErrExport, e.Kind, e.ID, e.Err)
}

func (e *ExportError) Unwrap() []error { return []error{ErrExport, e.Err} }

// NewExportError creates an ExportError.
func NewExportError(kind, id string, err error) *ExportError {
	return &ExportError{Kind: kind, ID: id, Err: err}
}
