package ir

import (
	"errors"
	"fmt"
)

var (
	ErrNull         = errors.New("null has no representation")
	ErrNotTable     = errors.New("document root is not a table")
	ErrIntRange     = errors.New("integer out of range")
	ErrNumberRange  = errors.New("number out of range")
	ErrNonFinite    = errors.New("non finite number")
	ErrKeyType      = errors.New("unsupported key type")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrUnsupported  = errors.New("unsupported value type")
)

// at wraps err with the path of the node where it happened.
func at(y *Node, err error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%w at %s", err, y.Path())
	}
	return fmt.Errorf("%w at %s: %s", err, y.Path(), fmt.Sprintf(format, args...))
}
