//go:build windows

package au3

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/rpdg/automations"
)

var (
	autoit = windows.NewLazyDLL(libraryName())

	procInit         = autoit.NewProc("AU3_Init")
	procError        = autoit.NewProc("AU3_error")
	procOpt          = autoit.NewProc("AU3_Opt")
	procSend         = autoit.NewProc("AU3_Send")
	procMouseClick   = autoit.NewProc("AU3_MouseClick")
	procMouseMove    = autoit.NewProc("AU3_MouseMove")
	procMouseDown    = autoit.NewProc("AU3_MouseDown")
	procMouseUp      = autoit.NewProc("AU3_MouseUp")
	procMouseWheel   = autoit.NewProc("AU3_MouseWheel")
	procMouseGetPosX = autoit.NewProc("AU3_MouseGetPosX")
	procMouseGetPosY = autoit.NewProc("AU3_MouseGetPosY")
	procWinActivate  = autoit.NewProc("AU3_WinActivate")
	procWinWaitAct   = autoit.NewProc("AU3_WinWaitActive")
	procWinGetTitle  = autoit.NewProc("AU3_WinGetTitle")
)

func libraryName() string {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		return "AutoItX3_x64.dll"
	}
	return "AutoItX3.dll"
}

// Client is a loaded AutoItX3 library. The library keeps global state, so
// calls are serialized.
type Client struct {
	mu sync.Mutex
}

var (
	initOnce sync.Once
	initErr  error
)

// New loads AutoItX3 and initializes it.
func New() (*Client, error) {
	initOnce.Do(func() {
		if err := autoit.Load(); err != nil {
			initErr = fmt.Errorf("%w: %v", automations.ErrDLLLoadFailed, err)
			return
		}
		procInit.Call()
	})
	if initErr != nil {
		return nil, initErr
	}
	return &Client{}, nil
}

func (c *Client) Keyboard() *Keyboard { return &Keyboard{c: c} }
func (c *Client) Mouse() *Mouse       { return &Mouse{c: c} }
func (c *Client) Window() *Window     { return &Window{c: c} }

// Opt sets an AutoIt option such as "SendKeyDelay" and returns its
// previous value.
func (c *Client) Opt(option string, value int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, _, _ := procOpt.Call(uintptr(unsafe.Pointer(wstr(option))), long(value))
	return int(int32(r))
}

// failed reports whether the last call set AutoIt's error flag. The
// caller must hold c.mu.
func (c *Client) failed() bool {
	r, _, _ := procError.Call()
	return int32(r) != 0
}

// wstr returns s as an LPCWSTR. Convert it to uintptr inside the Call
// expression so the buffer stays alive for the call.
func wstr(s string) *uint16 {
	return &EncodeUTF16(s)[0]
}

// long converts a signed value to a LONG argument.
func long(v int) uintptr {
	return uintptr(int32(v))
}
