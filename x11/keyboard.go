package x11

import (
	"context"
	"strconv"

	"github.com/rpdg/automations/keyboard"
)

// Keyboard sends key events through xdotool. It implements
// automations.Backend.
type Keyboard struct {
	tool   *Tool
	window WindowID
	tables *keyboard.Tables
}

func NewKeyboard(tool *Tool) *Keyboard {
	return &Keyboard{tool: tool, tables: keyboard.DefaultTables()}
}

// ForWindow returns a copy of k that sends input to window id. Zero means
// the active window.
//
// Some applications ignore synthetic events sent with --window.
func (k *Keyboard) ForWindow(id WindowID) *Keyboard {
	c := *k
	c.window = id
	return &c
}

// WithTables returns a copy of k that translates KeyDown and KeyUp
// arguments through t.
func (k *Keyboard) WithTables(t *keyboard.Tables) *Keyboard {
	c := *k
	c.tables = t
	return &c
}

func (k *Keyboard) args(cmd string) []string {
	args := []string{cmd}
	if k.window != 0 {
		args = append(args, "--window", k.window.String())
	}
	return args
}

// Type types s literally. No escape sequences are recognized.
func (k *Keyboard) Type(ctx context.Context, s string) error {
	args := k.args("type")
	if d := k.tool.cfg.TypeDelayMS; d > 0 {
		args = append(args, "--delay", strconv.Itoa(d))
	}
	args = append(args, "--", s)
	_, err := k.tool.Run(ctx, args...)
	return err
}

// Key presses a key or a combination like "ctrl+c".
func (k *Keyboard) Key(ctx context.Context, name string) error {
	_, err := k.tool.Run(ctx, append(k.args("key"), name)...)
	return err
}

// KeyDown holds key down until KeyUp is called. Special characters such
// as "ä" are translated to their key names.
func (k *Keyboard) KeyDown(ctx context.Context, key string) error {
	_, err := k.tool.Run(ctx, append(k.args("keydown"), k.keysym(key))...)
	return err
}

// KeyUp releases a key held by KeyDown.
func (k *Keyboard) KeyUp(ctx context.Context, key string) error {
	_, err := k.tool.Run(ctx, append(k.args("keyup"), k.keysym(key))...)
	return err
}

func (k *Keyboard) keysym(key string) string {
	if sym, ok := k.tables.Special(key); ok {
		return sym
	}
	return key
}

func (k *Keyboard) TypeLiteral(ctx context.Context, text string) error { return k.Type(ctx, text) }

func (k *Keyboard) PressKey(ctx context.Context, name string) error { return k.Key(ctx, name) }
