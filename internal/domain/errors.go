package domain

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrFormatUnresolved is returned when no format was given and the file
// suffix does not identify one.
var ErrFormatUnresolved = errors.New("could not determine file format, specify with --format")

// NotFoundError reports a config or schema path that does not exist or is
// not readable.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// IsNotFound reports whether err stems from a missing or unreadable file.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}

// ParseError reports content that violates the grammar of its resolved
// format, preserving the underlying syntax error.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s as %s: %v", e.Path, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
