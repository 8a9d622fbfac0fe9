package markconv

import (
	"errors"
	"fmt"

	"github.com/signadot/markconv/format"
)

var (
	ErrParse            = errors.New("parse error")
	ErrUnknownExtension = errors.New("unknown file extension")
	ErrFileRead         = errors.New("file read error")
	ErrConversion       = errors.New("conversion error")
	ErrNilFormat        = errors.New("nil format")

	errInvalidUTF8 = errors.New("invalid UTF-8")
	errMultiDoc    = errors.New("more than one YAML document")
)

// ParseError is returned when source text does not conform to the grammar
// of Format.
type ParseError struct {
	Format format.Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %s: %v", e.Format.Name(), e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// UnknownExtensionError is returned when a path has no extension or one
// that names no supported format.
type UnknownExtensionError struct {
	Path string
}

func (e *UnknownExtensionError) Error() string {
	return fmt.Sprintf("unknown file extension for file %q", e.Path)
}

func (e *UnknownExtensionError) Unwrap() error { return ErrUnknownExtension }

// FileReadError is returned when a source file cannot be read as text.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("could not read file %q: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() []error { return []error{ErrFileRead, e.Err} }

// ConversionError is returned when a value has no representation in the
// Target format.
type ConversionError struct {
	Target format.Format
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("could not convert to %s: %v", e.Target.Name(), e.Err)
}

func (e *ConversionError) Unwrap() []error { return []error{ErrConversion, e.Err} }
