package texttag

import (
	"errors"
	"fmt"
)

// ErrReservedLiteral is returned when a literal character would encode to
// a byte that the binary reader treats as a tag code.
var ErrReservedLiteral = errors.New("literal collides with a tag code")

// ErrUnnamedCode is returned when the tag table has no name for a code, so
// the tag has no text form that could be read back.
var ErrUnnamedCode = errors.New("tag code has no name")

// TagTooLongError reports a tag whose text rendering exceeds MaxTagLength.
type TagTooLongError struct {
	Rendered string
	Length   int
}

func (e *TagTooLongError) Error() string {
	return fmt.Sprintf("tag too long: %s (%d > %d characters)", e.Rendered, e.Length, MaxTagLength)
}

// LiteralError reports a literal that cannot be converted at Pos.
type LiteralError struct {
	Pos  int
	Rune rune
	Err  error
}

func (e *LiteralError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("literal %q at %d: %v", e.Rune, e.Pos, e.Err)
	}
	return fmt.Sprintf("literal %q at %d: not representable in charset", e.Rune, e.Pos)
}

func (e *LiteralError) Unwrap() error {
	return e.Err
}
