package fontconf

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// ErrDuplicateFont is returned when two statements register the same font name.
	ErrDuplicateFont = errors.New("font registered twice")

	// ErrUnknownFont is returned when a family or tweak names an unregistered font.
	ErrUnknownFont = errors.New("unknown font")
)

// Error is a configuration error at a position in the file.
type Error struct {
	Pos lexer.Position
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fontconf: %s: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
