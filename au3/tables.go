package au3

import "github.com/rpdg/automations/keyboard"

// aliases maps escape sequence names to AutoIt Send key names.
var aliases = map[string]string{
	"BS":        "BACKSPACE",
	"BACKSPACE": "BACKSPACE",
	"DEL":       "DELETE",
	"ESC":       "ESCAPE",
	"INS":       "INSERT",
	"TAB":       "TAB",
	"ENTER":     "ENTER",
	"RETURN":    "ENTER",
	"SPACE":     "SPACE",
	"HOME":      "HOME",
	"END":       "END",
	"PAUSE":     "PAUSE",
	"PRINT":     "PRINTSCREEN",
	"MENU":      "APPSKEY",
	"UP":        "UP",
	"DOWN":      "DOWN",
	"LEFT":      "LEFT",
	"RIGHT":     "RIGHT",
	"PGUP":      "PGUP",
	"PGDN":      "PGDN",
	"NUM0":      "NUMPAD0",
	"NUM1":      "NUMPAD1",
	"NUM2":      "NUMPAD2",
	"NUM3":      "NUMPAD3",
	"NUM4":      "NUMPAD4",
	"NUM5":      "NUMPAD5",
	"NUM6":      "NUMPAD6",
	"NUM7":      "NUMPAD7",
	"NUM8":      "NUMPAD8",
	"NUM9":      "NUMPAD9",
	"NUM_DIV":   "NUMPADDIV",
	"NUM_MUL":   "NUMPADMULT",
	"NUM_SUB":   "NUMPADSUB",
	"NUM_ADD":   "NUMPADADD",
	"NUM_ENTER": "NUMPADENTER",
	"NUM_DEL":   "NUMPADDOT",
	"NUM_COMMA": "NUMPADDOT",
	"NUM_INS":   "NUMPAD0",
	"CTRL":      "LCTRL",
	"ALT":       "LALT",
	"ALT_GR":    "RALT",
	"WIN":       "LWIN",
	"SUPER":     "LWIN",
}

// specials lists characters sent as keys. AutoIt types any other Unicode
// character in raw mode, so only control characters and braces are needed.
var specials = map[string]string{
	"\n": "ENTER",
	"\t": "TAB",
	"\b": "BACKSPACE",
	"{":  "{",
	"}":  "}",
}

var tables = keyboard.NewTables(aliases, specials)

// Tables returns keyboard tables that resolve to AutoIt key names. Use them
// with automations.WithTables when simulating through Keyboard.
func Tables() *keyboard.Tables { return tables }
