package keyboard

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every error returned from Tokenize and Resolve.
	ErrParse = errors.New("keyboard: parse error")

	// ErrUnbalancedBraces implies the number of { and } characters differs.
	ErrUnbalancedBraces = errors.New("invalid number of open and close braces")

	// ErrEmptyEscape implies a {} sequence with nothing between the braces.
	ErrEmptyEscape = errors.New("empty escape sequence")

	// ErrUnknownSpecialChar implies no key symbol is known for a character.
	ErrUnknownSpecialChar = errors.New("no key symbol known for character")

	// ErrInvalidTables implies a table definition could not be loaded.
	ErrInvalidTables = errors.New("keyboard: invalid tables")
)

// ParseError describes malformed keystroke input.
type ParseError struct {
	Input string
	// Pos is the byte offset in Input where the problem was found, or -1.
	Pos int
	// Char is the offending character for ErrUnknownSpecialChar.
	Char string
	Err  error
}

func (e *ParseError) Error() string {
	switch {
	case e.Char != "" && e.Pos >= 0:
		return fmt.Sprintf("keyboard: %v %q at offset %d", e.Err, e.Char, e.Pos)
	case e.Char != "":
		return fmt.Sprintf("keyboard: %v %q", e.Err, e.Char)
	case e.Pos >= 0:
		return fmt.Sprintf("keyboard: %v at offset %d in %q", e.Err, e.Pos, e.Input)
	default:
		return fmt.Sprintf("keyboard: %v in %q", e.Err, e.Input)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrParse for every ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
