package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input path does not resolve to a readable file.
var ErrFileNotFound = errors.New("file not found")

// ErrParse indicates the input could not be read as a table.
var ErrParse = errors.New("parse error")

// ParseError represents a failure to read a source as a table.
// It matches ErrParse and unwraps to the underlying reader error.
type ParseError struct {
	Path string
	Line int // 0 when the failure has no line, e.g. header or workbook errors
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %q at line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse error in %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a ParseError, taking the line from a csv error when present.
func NewParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Err: err}
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		pe.Line = csvErr.Line
	}
	return pe
}

func newFileNotFound(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
}
