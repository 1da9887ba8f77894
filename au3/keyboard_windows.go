//go:build windows

package au3

import (
	"context"
	"unsafe"
)

// Keyboard sends keystrokes with AU3_Send. It implements
// automations.Backend; pair it with Tables so key names match AutoIt's.
type Keyboard struct {
	c *Client
}

// Send sends text to the active window. If raw is false, AutoIt's own
// {KEY} and modifier syntax is interpreted.
func (k *Keyboard) Send(text string, raw bool) {
	mode := sendKeys
	if raw {
		mode = sendRaw
	}
	k.c.mu.Lock()
	defer k.c.mu.Unlock()
	procSend.Call(uintptr(unsafe.Pointer(wstr(text))), uintptr(mode))
}

func (k *Keyboard) TypeLiteral(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	k.Send(text, true)
	return nil
}

func (k *Keyboard) PressKey(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	k.Send(keyString(name), false)
	return nil
}
