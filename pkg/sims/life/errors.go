package life

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every IndexError.
var ErrIndexOutOfRange = errors.New("cell index out of range")

// ErrInvalidRule reports a malformed rule definition.
var ErrInvalidRule = errors.New("invalid rule")

// IndexError reports direct cell access outside the grid.
type IndexError struct {
	X, Y          int
	Width, Height int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
