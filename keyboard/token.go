package keyboard

import (
	"fmt"
	"strings"
)

// Kind identifies the type of a Token.
type Kind uint8

const (
	// Plain is literal text to be typed as-is.
	Plain Kind = iota
	// Escape is the content of a {...} sequence, resolved to a key name.
	Escape
	// Special is a single character that must be sent as a named key.
	Special
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Escape:
		return "escape"
	case Special:
		return "special"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Token is one unit of tokenized keystroke input.
type Token struct {
	Kind Kind
	Text string
}

// PlainText returns a Plain token.
func PlainText(s string) Token { return Token{Kind: Plain, Text: s} }

// EscapeSequence returns an Escape token for the content between braces.
func EscapeSequence(name string) Token { return Token{Kind: Escape, Text: name} }

// SpecialChar returns a Special token.
func SpecialChar(c string) Token { return Token{Kind: Special, Text: c} }

// Literal returns the token as it appeared in the input.
func (t Token) Literal() string {
	if t.Kind == Escape {
		return "{" + t.Text + "}"
	}
	return t.Text
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// Join concatenates the literal forms of tokens. For any input accepted by
// Tokenize, Join(Tokenize(s)) == s.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Literal())
	}
	return b.String()
}
