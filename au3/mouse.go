package au3

import (
	"fmt"

	"github.com/rpdg/automations"
)

// Button is an AutoIt mouse button name.
type Button string

const (
	ButtonLeft   Button = "left"
	ButtonRight  Button = "right"
	ButtonMiddle Button = "middle"
	ButtonMain   Button = "main"
	ButtonMenu   Button = "menu"
)

// Wheel directions.
const (
	WheelUp   = "up"
	WheelDown = "down"
)

func (b Button) check() error {
	switch b {
	case ButtonLeft, ButtonRight, ButtonMiddle, ButtonMain, ButtonMenu:
		return nil
	}
	return fmt.Errorf("%w: unknown mouse button %q", automations.ErrInvalidArgument, string(b))
}

func checkWheel(dir string) error {
	if dir != WheelUp && dir != WheelDown {
		return fmt.Errorf("%w: wheel direction %q", automations.ErrInvalidArgument, dir)
	}
	return nil
}

// intDefault makes AutoIt use the current position for a coordinate.
const intDefault = -2147483647

// defaultSpeed is AutoIt's default mouse speed, from 0 (instant) to 100.
const defaultSpeed = 10

func checkSpeed(speed int) error {
	if speed < 0 || speed > 100 {
		return fmt.Errorf("%w: speed must be 0..100, was %d", automations.ErrInvalidArgument, speed)
	}
	return nil
}
