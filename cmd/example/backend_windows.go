//go:build windows

package main

import (
	"log/slog"

	"github.com/rpdg/automations"
	"github.com/rpdg/automations/au3"
	"github.com/rpdg/automations/keyboard"
)

// baseTables uses AutoIt key names. A -config file is layered over them.
func baseTables() *keyboard.Tables { return au3.Tables() }

func newBackend(logger *slog.Logger, opts options, tables *keyboard.Tables) (automations.Backend, *keyboard.Tables, error) {
	c, err := au3.New()
	if err != nil {
		return nil, nil, err
	}
	if opts.window != 0 || opts.display != "" {
		logger.Warn("-window and -display are ignored on Windows")
	}
	return c.Keyboard(), tables, nil
}
