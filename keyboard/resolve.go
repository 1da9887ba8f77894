package keyboard

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Op is the action an Instruction asks the backend to perform.
type Op uint8

const (
	// TypeLiteral types Text as-is.
	TypeLiteral Op = iota
	// PressKey presses the key named Text.
	PressKey
)

func (o Op) String() string {
	switch o {
	case TypeLiteral:
		return "type"
	case PressKey:
		return "key"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Instruction is a single step for an input-injection backend.
type Instruction struct {
	Op   Op
	Text string
}

// Type returns a TypeLiteral instruction.
func Type(s string) Instruction { return Instruction{Op: TypeLiteral, Text: s} }

// Key returns a PressKey instruction.
func Key(name string) Instruction { return Instruction{Op: PressKey, Text: name} }

func (in Instruction) String() string {
	return fmt.Sprintf("%s %q", in.Op, in.Text)
}

// Resolve maps tokens to instructions using the default tables.
func Resolve(tokens []Token, raw bool) ([]Instruction, error) {
	return defaultTables.Resolve(tokens, raw)
}

// Parse tokenizes and resolves input using the default tables.
func Parse(input string, raw bool) ([]Instruction, error) {
	return defaultTables.Parse(input, raw)
}

// Parse tokenizes and resolves input.
func (t *Tables) Parse(input string, raw bool) ([]Instruction, error) {
	tokens, err := t.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return t.Resolve(tokens, raw)
}

// Resolve maps each token to an instruction, preserving order.
//
// In raw mode escape sequences are typed literally, braces included.
// Special characters are pressed as keys in both modes. Otherwise an escape
// is looked up in the alias table and, failing that, passed on as a key name
// normalized by KeyName. Key names are not validated here.
func (t *Tables) Resolve(tokens []Token, raw bool) ([]Instruction, error) {
	out := make([]Instruction, 0, len(tokens))
	pos := 0
	for _, tok := range tokens {
		at := pos
		pos += len(tok.Literal())
		switch tok.Kind {
		case Plain:
			out = append(out, Type(tok.Text))
		case Escape:
			if tok.Text == "" {
				return nil, &ParseError{Input: Join(tokens), Pos: at, Err: ErrEmptyEscape}
			}
			if raw {
				out = append(out, Type(tok.Literal()))
				continue
			}
			if sym, ok := t.Alias(tok.Text); ok {
				out = append(out, Key(sym))
			} else {
				out = append(out, Key(KeyName(tok.Text)))
			}
		case Special:
			sym, ok := t.Special(tok.Text)
			if !ok {
				return nil, &ParseError{Input: Join(tokens), Pos: at, Char: tok.Text, Err: ErrUnknownSpecialChar}
			}
			out = append(out, Key(sym))
		default:
			return nil, &ParseError{Input: Join(tokens), Pos: at, Err: fmt.Errorf("invalid token kind %v", tok.Kind)}
		}
	}
	return out, nil
}

// KeyName capitalizes each underscore-separated segment of name:
// "shift_a" becomes "Shift_A" and "page_down" becomes "Page_Down".
func KeyName(name string) string {
	parts := strings.Split(name, "_")
	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return strings.Join(parts, "_")
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[n:])
}
