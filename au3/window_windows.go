//go:build windows

package au3

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/rpdg/automations"
)

const titleBufSize = 512

// Window addresses windows by title and, optionally, by text they contain,
// using AutoIt's title matching rules.
type Window struct {
	c *Client
}

// Activate activates the first window matching title and text.
func (w *Window) Activate(title, text string) error {
	w.c.mu.Lock()
	defer w.c.mu.Unlock()
	procWinActivate.Call(uintptr(unsafe.Pointer(wstr(title))), uintptr(unsafe.Pointer(wstr(text))))
	if w.c.failed() {
		return fmt.Errorf("%w: %q", automations.ErrWindowNotFound, title)
	}
	return nil
}

// WaitActive blocks until a matching window is active or timeout elapses.
// A zero timeout waits forever.
func (w *Window) WaitActive(title, text string, timeout time.Duration) error {
	secs := int((timeout + time.Second - 1) / time.Second)
	w.c.mu.Lock()
	defer w.c.mu.Unlock()
	r, _, _ := procWinWaitAct.Call(uintptr(unsafe.Pointer(wstr(title))), uintptr(unsafe.Pointer(wstr(text))), long(secs))
	if r == 0 {
		return fmt.Errorf("%w: %q not active after %v", automations.ErrWindowNotFound, title, timeout)
	}
	return nil
}

// Title returns the full title of the first window matching title and text.
func (w *Window) Title(title, text string) (string, error) {
	buf := make([]uint16, titleBufSize)
	w.c.mu.Lock()
	defer w.c.mu.Unlock()
	procWinGetTitle.Call(
		uintptr(unsafe.Pointer(wstr(title))),
		uintptr(unsafe.Pointer(wstr(text))),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if w.c.failed() {
		return "", fmt.Errorf("%w: %q", automations.ErrWindowNotFound, title)
	}
	return DecodeUTF16(buf), nil
}
