package keyboard

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		raw   bool
		want  []Instruction
	}{
		{"Ab{ESC}c", false, []Instruction{Type("Ab"), Key("Escape"), Type("c")}},
		{"Ab{ESC}c", true, []Instruction{Type("Ab"), Type("{ESC}"), Type("c")}},
		{"a€b", false, []Instruction{Type("a"), Key("EuroSign"), Type("b")}},
		{"{esc}", false, []Instruction{Key("Escape")}},
		{"{Num_Enter}", false, []Instruction{Key("KP_Enter")}},
		{"{shift_a}", false, []Instruction{Key("Shift_A")}},
		{"{F5}", false, []Instruction{Key("F5")}},
		{"{ctrl+c}", false, []Instruction{Key("Ctrl+c")}},
		{"tex{BS}st", false, []Instruction{Type("tex"), Key("BackSpace"), Type("st")}},
		// Special characters are keys even in raw mode.
		{"a\tb", true, []Instruction{Type("a"), Key("Tab"), Type("b")}},
		{"{TAB}ä", true, []Instruction{Type("{TAB}"), Key("adiaeresis")}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input, tt.raw)
		if err != nil {
			t.Errorf("Parse(%q, %v) error = %v", tt.input, tt.raw, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Parse(%q, %v) mismatch (-want +got):\n%s", tt.input, tt.raw, diff)
		}
	}
}

func TestResolveUnknownSpecialChar(t *testing.T) {
	tokens := []Token{PlainText("ab"), EscapeSequence("TAB"), SpecialChar("ñ")}

	_, err := Resolve(tokens, false)
	if !errors.Is(err, ErrUnknownSpecialChar) {
		t.Fatalf("Resolve error = %v, want ErrUnknownSpecialChar", err)
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("Resolve error = %v, should match ErrParse", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Resolve error = %#v, want *ParseError", err)
	}
	if pe.Char != "ñ" || pe.Input != "ab{TAB}ñ" || pe.Pos != 7 {
		t.Errorf("ParseError = {Input %q, Pos %d, Char %q}, want {ab{TAB}ñ, 7, ñ}", pe.Input, pe.Pos, pe.Char)
	}
}

func TestResolveEmptyEscape(t *testing.T) {
	_, err := Resolve([]Token{EscapeSequence("")}, true)
	if !errors.Is(err, ErrEmptyEscape) {
		t.Errorf("Resolve error = %v, want ErrEmptyEscape", err)
	}
}

func TestResolveIdempotent(t *testing.T) {
	tokens, err := Tokenize("x{CTRL}\n{foo_bar}€")
	if err != nil {
		t.Fatalf("Tokenize error = %v", err)
	}
	before := append([]Token(nil), tokens...)

	for _, raw := range []bool{false, true} {
		first, err := Resolve(tokens, raw)
		if err != nil {
			t.Fatalf("Resolve(raw=%v) error = %v", raw, err)
		}
		second, err := Resolve(tokens, raw)
		if err != nil {
			t.Fatalf("Resolve(raw=%v) error = %v", raw, err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Resolve(raw=%v) not idempotent (-first +second):\n%s", raw, diff)
		}
	}
	if diff := cmp.Diff(before, tokens); diff != "" {
		t.Errorf("Resolve modified tokens (-before +after):\n%s", diff)
	}
}

func TestParseConcurrent(t *testing.T) {
	want, err := Parse("Ab{ESC}c€", false)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Parse("Ab{ESC}c€", false)
			if err != nil {
				t.Errorf("Parse error = %v", err)
				return
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("concurrent Parse mismatch:\n%s", diff)
			}
		}()
	}
	wg.Wait()
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"shift_a", "Shift_A"},
		{"page_down", "Page_Down"},
		{"F1", "F1"},
		{"RETURN", "Return"},
		{"a", "A"},
		{"_x", "_X"},
		{"über", "Über"},
	}

	for _, tt := range tests {
		if got := KeyName(tt.name); got != tt.want {
			t.Errorf("KeyName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTablesLookup(t *testing.T) {
	tables := DefaultTables()

	if sym, ok := tables.Alias("bs"); !ok || sym != "BackSpace" {
		t.Errorf("Alias(bs) = %q, %v", sym, ok)
	}
	if sym, ok := tables.Special("\n"); !ok || sym != "Return" {
		t.Errorf("Special(\\n) = %q, %v", sym, ok)
	}
	if sym, ok := tables.Special("{"); !ok || sym != "braceleft" {
		t.Errorf("Special({) = %q, %v", sym, ok)
	}

	// Copies must not leak into the live tables.
	a := tables.Aliases()
	a["BS"] = "Delete"
	if sym, _ := tables.Alias("BS"); sym != "BackSpace" {
		t.Errorf("Aliases() copy modified tables: BS = %q", sym)
	}
}

func TestTablesWith(t *testing.T) {
	base := DefaultTables()
	custom := base.With(map[string]string{"caps": "Caps_Lock"}, map[string]string{"ñ": "ntilde"})

	if sym, ok := custom.Alias("CAPS"); !ok || sym != "Caps_Lock" {
		t.Errorf("custom Alias(CAPS) = %q, %v", sym, ok)
	}
	if sym, ok := custom.Alias("ESC"); !ok || sym != "Escape" {
		t.Errorf("custom Alias(ESC) = %q, %v", sym, ok)
	}
	if _, ok := base.Alias("CAPS"); ok {
		t.Error("With modified the base tables")
	}

	got, err := custom.Parse("{caps}ñ", false)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	want := []Instruction{Key("Caps_Lock"), Key("ntilde")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}
