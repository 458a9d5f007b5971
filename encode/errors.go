package encode

import (
	"errors"
	"fmt"
)

var (
	ErrMismatchedDelimiter = errors.New("mismatched delimiter")
	ErrUnterminatedGroup   = errors.New("unterminated group")
)

// Position locates a character in the input. Offset is in bytes, Line and
// Column are 1-based and Column counts runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SyntaxError reports the delimiter that made the input impossible to encode.
// For ErrUnterminatedGroup, Delim and Pos refer to the innermost opening
// delimiter that was never closed.
type SyntaxError struct {
	Err   error
	Delim rune
	Pos   Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %v %q", e.Pos, e.Err, e.Delim)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
