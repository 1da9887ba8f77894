//go:build !windows

package au3

import (
	"context"
	"fmt"

	"github.com/rpdg/automations"
)

// Client is only usable on Windows.
type Client struct{}

// New always fails outside Windows.
func New() (*Client, error) {
	return nil, fmt.Errorf("%w: AutoItX3 requires Windows", automations.ErrBackendUnavailable)
}

// Keyboard returns a backend whose calls fail with ErrBackendUnavailable.
func (c *Client) Keyboard() *Keyboard { return &Keyboard{} }

type Keyboard struct{}

func (k *Keyboard) TypeLiteral(context.Context, string) error { return automations.ErrBackendUnavailable }
func (k *Keyboard) PressKey(context.Context, string) error    { return automations.ErrBackendUnavailable }
