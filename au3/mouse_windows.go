//go:build windows

package au3

import (
	"fmt"
	"unsafe"

	"github.com/rpdg/automations"
)

type Mouse struct {
	c *Client
}

// Move moves the cursor to x, y. speed ranges from 0 (instant) to 100.
func (m *Mouse) Move(x, y, speed int) error {
	if err := checkSpeed(speed); err != nil {
		return err
	}
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	procMouseMove.Call(long(x), long(y), long(speed))
	return nil
}

// Click clicks b clicks times at the current position.
func (m *Mouse) Click(b Button, clicks int) error {
	return m.click(b, intDefault, intDefault, clicks, defaultSpeed)
}

// ClickAt moves to x, y and clicks b clicks times.
func (m *Mouse) ClickAt(b Button, x, y, clicks, speed int) error {
	return m.click(b, x, y, clicks, speed)
}

func (m *Mouse) click(b Button, x, y, clicks, speed int) error {
	if err := b.check(); err != nil {
		return err
	}
	if err := checkSpeed(speed); err != nil {
		return err
	}
	if clicks < 1 {
		return fmt.Errorf("%w: clicks must be positive, was %d", automations.ErrInvalidArgument, clicks)
	}
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	r, _, _ := procMouseClick.Call(uintptr(unsafe.Pointer(wstr(string(b)))), long(x), long(y), long(clicks), long(speed))
	if r == 0 {
		return fmt.Errorf("%w: AU3_MouseClick %s", automations.ErrCommandFailed, b)
	}
	return nil
}

func (m *Mouse) Down(b Button) error {
	if err := b.check(); err != nil {
		return err
	}
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	procMouseDown.Call(uintptr(unsafe.Pointer(wstr(string(b)))))
	return nil
}

func (m *Mouse) Up(b Button) error {
	if err := b.check(); err != nil {
		return err
	}
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	procMouseUp.Call(uintptr(unsafe.Pointer(wstr(string(b)))))
	return nil
}

// Wheel scrolls clicks notches in dir, WheelUp or WheelDown.
func (m *Mouse) Wheel(dir string, clicks int) error {
	if err := checkWheel(dir); err != nil {
		return err
	}
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	procMouseWheel.Call(uintptr(unsafe.Pointer(wstr(dir))), long(clicks))
	return nil
}

// Position returns the cursor position in screen coordinates.
func (m *Mouse) Position() (x, y int) {
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	rx, _, _ := procMouseGetPosX.Call()
	ry, _, _ := procMouseGetPosY.Call()
	return int(int32(rx)), int(int32(ry))
}
