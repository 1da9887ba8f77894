package automations

import (
	"errors"

	"github.com/rpdg/automations/keyboard"
)

var (
	// ErrParse implies the keystroke string was malformed. Errors returned by
	// the keyboard package match it.
	ErrParse = keyboard.ErrParse

	// ErrWindowNotFound implies the target window could not be located by name
	// or class.
	ErrWindowNotFound = errors.New("window not found")

	// ErrBackendUnavailable implies the input backend cannot run on this system.
	ErrBackendUnavailable = errors.New("input backend unavailable")

	// ErrCommandFailed implies an external tool exited with an error.
	ErrCommandFailed = errors.New("automation command failed")

	// ErrInvalidKey implies the backend rejected a key name.
	ErrInvalidKey = errors.New("invalid key name")

	// ErrDLLLoadFailed implies AutoItX3.dll could not be loaded.
	ErrDLLLoadFailed = errors.New("failed to load AutoItX3 library")

	// ErrInvalidArgument implies a parameter was out of range, e.g. a mouse
	// button the backend does not know.
	ErrInvalidArgument = errors.New("invalid argument")
)
