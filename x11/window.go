package x11

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rpdg/automations"
)

// WindowID is an X window id.
type WindowID uint64

func (id WindowID) String() string { return strconv.FormatUint(uint64(id), 10) }

// Windows finds and activates top-level windows.
type Windows struct {
	tool *Tool
}

func NewWindows(tool *Tool) *Windows {
	return &Windows{tool: tool}
}

// Search returns all windows whose title, class or class name matches the
// regular expression pattern.
func (w *Windows) Search(ctx context.Context, pattern string) ([]WindowID, error) {
	out, err := w.tool.Run(ctx, "search", "--name", "--class", "--classname", pattern)
	ids, perr := parseIDs(out)
	if perr != nil {
		return nil, perr
	}
	if len(ids) == 0 {
		// xdotool exits 1 without output when nothing matched. Anything on
		// stderr, such as a display it cannot open, is a real failure.
		var ce *CommandError
		if err != nil && (!errors.As(err, &ce) || ce.Stderr != "") {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %q", automations.ErrWindowNotFound, pattern)
	}
	return ids, nil
}

// Active returns the currently active window.
func (w *Windows) Active(ctx context.Context) (WindowID, error) {
	out, err := w.tool.Run(ctx, "getactivewindow")
	if err != nil {
		return 0, err
	}
	ids, err := parseIDs(out)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, automations.ErrWindowNotFound
	}
	return ids[0], nil
}

// Activate raises and focuses id, switching desktops if needed.
func (w *Windows) Activate(ctx context.Context, id WindowID) error {
	_, err := w.tool.Run(ctx, "windowactivate", "--sync", id.String())
	return err
}

// WaitFor polls Search every interval until a window matches pattern or ctx
// is done.
func (w *Windows) WaitFor(ctx context.Context, pattern string, interval time.Duration) ([]WindowID, error) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		ids, err := w.Search(ctx, pattern)
		if err == nil {
			return ids, nil
		}
		if !errors.Is(err, automations.ErrWindowNotFound) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for window %q: %w", pattern, ctx.Err())
		case <-ticker.C:
		}
	}
}

func parseIDs(out []byte) ([]WindowID, error) {
	var ids []WindowID
	for _, f := range strings.Fields(string(out)) {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: unexpected window id %q", automations.ErrCommandFailed, f)
		}
		ids = append(ids, WindowID(n))
	}
	return ids, nil
}
