package x11

import (
	"fmt"
	"io"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultBinary = "xdotool"

// Config holds xdotool settings. It is read from the [x11] section of a
// TOML file, so it can share a file with keyboard tables.
type Config struct {
	// Binary is the xdotool executable. Defaults to "xdotool".
	Binary string `toml:"binary"`
	// Display overrides DISPLAY when non-empty.
	Display string `toml:"display"`
	// TypeDelayMS is the delay between typed characters. Zero keeps the
	// xdotool default.
	TypeDelayMS int `toml:"type_delay_ms"`
}

func DefaultConfig() Config {
	return Config{Binary: defaultBinary}
}

// TypeDelay returns TypeDelayMS as a duration.
func (c Config) TypeDelay() time.Duration {
	return time.Duration(c.TypeDelayMS) * time.Millisecond
}

func (c Config) withDefaults() Config {
	if c.Binary == "" {
		c.Binary = defaultBinary
	}
	return c
}

// LoadConfig reads the [x11] section from r.
func LoadConfig(r io.Reader) (Config, error) {
	var f struct {
		X11 Config `toml:"x11"`
	}
	if err := toml.NewDecoder(r).Decode(&f); err != nil {
		return Config{}, fmt.Errorf("x11: parse config: %w", err)
	}
	if f.X11.TypeDelayMS < 0 {
		return Config{}, fmt.Errorf("x11: type_delay_ms must not be negative, got %d", f.X11.TypeDelayMS)
	}
	return f.X11.withDefaults(), nil
}

// LoadConfigFile reads the [x11] section from the file at path.
func LoadConfigFile(path string) (Config, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer fh.Close()
	return LoadConfig(fh)
}
