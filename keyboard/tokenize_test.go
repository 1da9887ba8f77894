package keyboard

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{"", nil},
		{"abc", []Token{PlainText("abc")}},
		{"a{BS}b", []Token{PlainText("a"), EscapeSequence("BS"), PlainText("b")}},
		{"{ESC}", []Token{EscapeSequence("ESC")}},
		{"abc{ESC}{ESC}", []Token{PlainText("abc"), EscapeSequence("ESC"), EscapeSequence("ESC")}},
		{"x\näy", []Token{PlainText("x"), SpecialChar("\n"), SpecialChar("ä"), PlainText("y")}},
		{"a€b", []Token{PlainText("a"), SpecialChar("€"), PlainText("b")}},
		{"@@", []Token{SpecialChar("@"), SpecialChar("@")}},
		{"日本{TAB}語", []Token{PlainText("日本"), EscapeSequence("TAB"), PlainText("語")}},
		// Escape content is never scanned for special characters.
		{"{@}x@", []Token{EscapeSequence("@"), PlainText("x"), SpecialChar("@")}},
		// Nesting is not validated; the first } closes the sequence.
		{"{a{b}c}", []Token{EscapeSequence("a{b"), PlainText("c"), SpecialChar("}")}},
	}

	for _, tt := range tests {
		got, err := Tokenize(tt.input)
		if err != nil {
			t.Errorf("Tokenize(%q) error = %v", tt.input, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestTokenizeGraphemeClusters(t *testing.T) {
	// "ä" followed by a combining acute accent is one cluster that is not in
	// the table, so it must not be split off as a special character.
	input := "x\u00e4\u0301y\u00e4\u0301"
	got, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", input, err)
	}
	want := []Token{PlainText(input)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", input, diff)
	}
}

func TestTokenizeCRLF(t *testing.T) {
	got, err := Tokenize("one\r\ntwo\r\n")
	if err != nil {
		t.Fatalf("Tokenize error = %v", err)
	}
	want := []Token{
		PlainText("one\r"), SpecialChar("\n"),
		PlainText("two\r"), SpecialChar("\n"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
		wantPos int
	}{
		{"a{}b", ErrEmptyEscape, 1},
		{"{}", ErrEmptyEscape, 0},
		{"a{bc", ErrUnbalancedBraces, -1},
		{"a}", ErrUnbalancedBraces, -1},
		{"}{a", ErrUnbalancedBraces, 1},
		{"{a}}{", ErrUnbalancedBraces, 4},
	}

	for _, tt := range tests {
		_, err := Tokenize(tt.input)
		if err == nil {
			t.Errorf("Tokenize(%q) expected error", tt.input)
			continue
		}
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Tokenize(%q) error = %v, want %v", tt.input, err, tt.wantErr)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("Tokenize(%q) error = %v, should match ErrParse", tt.input, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Tokenize(%q) error type = %T, want *ParseError", tt.input, err)
			continue
		}
		if pe.Pos != tt.wantPos {
			t.Errorf("Tokenize(%q) error pos = %d, want %d", tt.input, pe.Pos, tt.wantPos)
		}
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"abc",
		"a{BS}b",
		"{CTRL}{ESC}",
		"Ab{ESC}c€",
		"line one\nline\ttwo",
		"ÄÖÜ äöü ß",
		"{a{b}c}",
		"[x] | y? @home §1",
		"日本語{ENTER}",
		"e\u0301{TAB}\u00e9",
		"a\r\nb\r\n",
	}

	for _, s := range inputs {
		tokens, err := Tokenize(s)
		if err != nil {
			t.Errorf("Tokenize(%q) error = %v", s, err)
			continue
		}
		if got := Join(tokens); got != s {
			t.Errorf("Join(Tokenize(%q)) = %q", s, got)
		}
		for _, tok := range tokens {
			if tok.Text == "" {
				t.Errorf("Tokenize(%q) produced empty token %v", s, tok)
			}
		}
	}
}

func TestTokenizeCustomTables(t *testing.T) {
	tables := NewTables(nil, map[string]string{"ñ": "ntilde"})

	got, err := tables.Tokenize("añb{x}ä")
	if err != nil {
		t.Fatalf("Tokenize error = %v", err)
	}
	want := []Token{PlainText("a"), SpecialChar("ñ"), PlainText("b"), EscapeSequence("x"), PlainText("ä")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenLiteral(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{PlainText("abc"), "abc"},
		{EscapeSequence("ESC"), "{ESC}"},
		{SpecialChar("ä"), "ä"},
	}

	for _, tt := range tests {
		if got := tt.tok.Literal(); got != tt.want {
			t.Errorf("%v.Literal() = %q, want %q", tt.tok, got, tt.want)
		}
	}
}
