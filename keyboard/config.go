package keyboard

import (
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rivo/uniseg"
)

// tablesFile is the on-disk form of Tables:
//
//	replace = false
//
//	[aliases]
//	CAPS = "Caps_Lock"
//
//	[special]
//	"ñ" = "ntilde"
//
// Other top-level sections are ignored so the same file can carry backend
// settings.
type tablesFile struct {
	Replace bool              `toml:"replace"`
	Aliases map[string]string `toml:"aliases"`
	Special map[string]string `toml:"special"`
}

// LoadTables reads TOML table definitions from r. Entries are layered over
// DefaultTables unless the file sets replace = true.
func LoadTables(r io.Reader) (*Tables, error) { return defaultTables.Load(r) }

// LoadTablesFile reads table definitions from the file at path.
func LoadTablesFile(path string) (*Tables, error) { return defaultTables.LoadFile(path) }

// Load is like LoadTables but layers the entries over t.
func (t *Tables) Load(r io.Reader) (*Tables, error) {
	var f tablesFile
	if err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTables, err)
	}
	for name, sym := range f.Aliases {
		if name == "" || sym == "" {
			return nil, fmt.Errorf("%w: empty alias %q = %q", ErrInvalidTables, name, sym)
		}
	}
	for c, sym := range f.Special {
		if uniseg.GraphemeClusterCount(c) != 1 {
			return nil, fmt.Errorf("%w: special key %q is not a single character", ErrInvalidTables, c)
		}
		if sym == "" {
			return nil, fmt.Errorf("%w: empty key symbol for %q", ErrInvalidTables, c)
		}
	}

	if f.Replace {
		return NewTables(f.Aliases, f.Special), nil
	}
	return t.With(f.Aliases, f.Special), nil
}

// LoadFile is like LoadTablesFile but layers the entries over t.
func (t *Tables) LoadFile(path string) (*Tables, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return t.Load(fh)
}
