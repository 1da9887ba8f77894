package keyboard

import (
	"maps"
	"strings"
)

// defaultAliases maps upper-case escape sequence names to X keysyms.
var defaultAliases = map[string]string{
	"BS":        "BackSpace",
	"BACKSPACE": "BackSpace",
	"DEL":       "Delete",
	"ESC":       "Escape",
	"INS":       "Insert",
	"TAB":       "Tab",
	"ENTER":     "Return",
	"RETURN":    "Return",
	"SPACE":     "space",
	"HOME":      "Home",
	"END":       "End",
	"PAUSE":     "Pause",
	"PRINT":     "Print",
	"MENU":      "Menu",
	"UP":        "Up",
	"DOWN":      "Down",
	"LEFT":      "Left",
	"RIGHT":     "Right",
	"PGUP":      "Prior",
	"PGDN":      "Next",
	"NUM0":      "KP_0",
	"NUM1":      "KP_End",
	"NUM2":      "KP_Down",
	"NUM3":      "KP_Next",
	"NUM4":      "KP_Left",
	"NUM5":      "KP_Begin",
	"NUM6":      "KP_Right",
	"NUM7":      "KP_Home",
	"NUM8":      "KP_Up",
	"NUM9":      "KP_Prior",
	"NUM_DIV":   "KP_Divide",
	"NUM_MUL":   "KP_Multiply",
	"NUM_SUB":   "KP_Subtract",
	"NUM_ADD":   "KP_Add",
	"NUM_ENTER": "KP_Enter",
	"NUM_DEL":   "KP_Delete",
	"NUM_COMMA": "KP_Separator",
	"NUM_INS":   "KP_Insert",
	"CTRL":      "Control_L",
	"ALT":       "Alt_L",
	"ALT_GR":    "ISO_Level3_Shift",
	"WIN":       "Super_L",
	"SUPER":     "Super_L",
}

// defaultSpecialChars maps characters that xdotool type cannot produce
// reliably to the keysym that does.
var defaultSpecialChars = map[string]string{
	"ä":  "adiaeresis",
	"Ä":  "Adiaeresis",
	"ö":  "odiaeresis",
	"Ö":  "Odiaeresis",
	"ü":  "udiaeresis",
	"Ü":  "Udiaeresis",
	"ë":  "ediaeresis",
	"Ë":  "Ediaeresis",
	"ï":  "idiaeresis",
	"Ï":  "Idiaeresis",
	"ß":  "ssharp",
	"\n": "Return",
	"\t": "Tab",
	"\b": "BackSpace",
	"§":  "section",
	"[":  "bracketleft",
	"]":  "bracketright",
	"{":  "braceleft",
	"}":  "braceright",
	"@":  "at",
	"€":  "EuroSign",
	"|":  "bar",
	"?":  "question",
}

// Tables holds the alias and special-character mappings used by Tokenize
// and Resolve. A Tables value is never modified after construction and is
// safe for concurrent use.
type Tables struct {
	aliases  map[string]string
	specials map[string]string
}

var defaultTables = NewTables(defaultAliases, defaultSpecialChars)

// DefaultTables returns the bundled tables. Use Aliases and SpecialChars
// for a copy of their entries.
func DefaultTables() *Tables { return defaultTables }

// NewTables copies aliases and specials into a new Tables. Alias names are
// upper-cased so lookups are case-insensitive.
func NewTables(aliases, specials map[string]string) *Tables {
	t := &Tables{
		aliases:  make(map[string]string, len(aliases)),
		specials: maps.Clone(specials),
	}
	if t.specials == nil {
		t.specials = map[string]string{}
	}
	for name, sym := range aliases {
		t.aliases[strings.ToUpper(name)] = sym
	}
	return t
}

// Alias returns the key name registered for an escape sequence.
func (t *Tables) Alias(name string) (string, bool) {
	sym, ok := t.aliases[strings.ToUpper(name)]
	return sym, ok
}

// Special returns the key name registered for a character.
func (t *Tables) Special(c string) (string, bool) {
	sym, ok := t.specials[c]
	return sym, ok
}

// Aliases returns a copy of the alias table.
func (t *Tables) Aliases() map[string]string { return maps.Clone(t.aliases) }

// SpecialChars returns a copy of the special-character table.
func (t *Tables) SpecialChars() map[string]string { return maps.Clone(t.specials) }

// With returns new tables with the given entries layered over t. Alias
// names match existing entries regardless of case.
func (t *Tables) With(aliases, specials map[string]string) *Tables {
	a := maps.Clone(t.aliases)
	for name, sym := range aliases {
		a[strings.ToUpper(name)] = sym
	}
	s := maps.Clone(t.specials)
	maps.Copy(s, specials)
	return NewTables(a, s)
}
