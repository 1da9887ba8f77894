package x11

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/rpdg/automations"
)

// Button is an X pointer button number.
type Button int

const (
	ButtonLeft      Button = 1
	ButtonMiddle    Button = 2
	ButtonRight     Button = 3
	ButtonWheelUp   Button = 4
	ButtonWheelDown Button = 5
)

var buttonNames = map[string]Button{
	"left":   ButtonLeft,
	"middle": ButtonMiddle,
	"right":  ButtonRight,
	"up":     ButtonWheelUp,
	"down":   ButtonWheelDown,
}

// ParseButton maps "left", "middle", "right", "up" or "down" to a Button.
func ParseButton(name string) (Button, error) {
	b, ok := buttonNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown mouse button %q", automations.ErrInvalidArgument, name)
	}
	return b, nil
}

func (b Button) valid() bool { return b >= ButtonLeft && b <= ButtonWheelDown }

func (b Button) arg() (string, error) {
	if !b.valid() {
		return "", fmt.Errorf("%w: mouse button %d", automations.ErrInvalidArgument, int(b))
	}
	return strconv.Itoa(int(b)), nil
}

var locationRe = regexp.MustCompile(`x:(-?\d+)\s+y:(-?\d+)`)

type Mouse struct {
	tool *Tool
}

func NewMouse(tool *Tool) *Mouse {
	return &Mouse{tool: tool}
}

// Position returns the cursor position in screen coordinates.
func (m *Mouse) Position(ctx context.Context) (x, y int, err error) {
	out, err := m.tool.Run(ctx, "getmouselocation")
	if err != nil {
		return 0, 0, err
	}
	match := locationRe.FindSubmatch(out)
	if match == nil {
		return 0, 0, fmt.Errorf("%w: cannot parse mouse location %q", automations.ErrCommandFailed, out)
	}
	x, _ = strconv.Atoi(string(match[1]))
	y, _ = strconv.Atoi(string(match[2]))
	return x, y, nil
}

// Move sets the cursor to x, y and waits for the move to be applied.
func (m *Mouse) Move(ctx context.Context, x, y int) error {
	_, err := m.tool.Run(ctx, "mousemove", "--sync", strconv.Itoa(x), strconv.Itoa(y))
	return err
}

// Glide moves the cursor to x, y in steps of at most speed pixels per axis.
func (m *Mouse) Glide(ctx context.Context, x, y, speed int) error {
	if speed <= 0 {
		return fmt.Errorf("%w: speed has to be > 0, was %d", automations.ErrInvalidArgument, speed)
	}
	cx, cy, err := m.Position(ctx)
	if err != nil {
		return err
	}
	for cx != x || cy != y {
		cx = step(cx, x, speed)
		cy = step(cy, y, speed)
		if err := m.Move(ctx, cx, cy); err != nil {
			return err
		}
	}
	return nil
}

func step(from, to, speed int) int {
	switch {
	case to-from > speed:
		return from + speed
	case from-to > speed:
		return from - speed
	default:
		return to
	}
}

// Click clicks b at the current position.
func (m *Mouse) Click(ctx context.Context, b Button) error {
	return m.button(ctx, "click", b)
}

// ClickAt moves to x, y and clicks b.
func (m *Mouse) ClickAt(ctx context.Context, x, y int, b Button) error {
	if err := m.Move(ctx, x, y); err != nil {
		return err
	}
	return m.Click(ctx, b)
}

func (m *Mouse) Down(ctx context.Context, b Button) error {
	return m.button(ctx, "mousedown", b)
}

func (m *Mouse) Up(ctx context.Context, b Button) error {
	return m.button(ctx, "mouseup", b)
}

// Wheel scrolls amount notches; dir is ButtonWheelUp or ButtonWheelDown.
func (m *Mouse) Wheel(ctx context.Context, dir Button, amount int) error {
	if dir != ButtonWheelUp && dir != ButtonWheelDown {
		return fmt.Errorf("%w: wheel direction %d", automations.ErrInvalidArgument, int(dir))
	}
	for i := 0; i < amount; i++ {
		if err := m.Click(ctx, dir); err != nil {
			return err
		}
	}
	return nil
}

// Drag presses b at x1, y1, moves to x2, y2 and releases it.
func (m *Mouse) Drag(ctx context.Context, x1, y1, x2, y2 int, b Button) error {
	if err := m.Move(ctx, x1, y1); err != nil {
		return err
	}
	if err := m.Down(ctx, b); err != nil {
		return err
	}
	if err := m.Move(ctx, x2, y2); err != nil {
		m.Up(ctx, b) // Try cleanup
		return err
	}
	return m.Up(ctx, b)
}

func (m *Mouse) button(ctx context.Context, cmd string, b Button) error {
	arg, err := b.arg()
	if err != nil {
		return err
	}
	_, err = m.tool.Run(ctx, cmd, arg)
	return err
}
