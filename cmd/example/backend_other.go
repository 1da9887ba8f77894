//go:build !windows

package main

import (
	"log/slog"

	"github.com/rpdg/automations"
	"github.com/rpdg/automations/keyboard"
	"github.com/rpdg/automations/x11"
)

func baseTables() *keyboard.Tables { return keyboard.DefaultTables() }

func newBackend(logger *slog.Logger, opts options, tables *keyboard.Tables) (automations.Backend, *keyboard.Tables, error) {
	cfg := x11.DefaultConfig()
	if opts.config != "" {
		c, err := x11.LoadConfigFile(opts.config)
		if err != nil {
			return nil, nil, err
		}
		cfg = c
	}
	if opts.display != "" {
		cfg.Display = opts.display
	}

	tool := x11.NewTool(x11.WithConfig(cfg), x11.WithLogger(logger))
	kb := x11.NewKeyboard(tool).WithTables(tables).ForWindow(x11.WindowID(opts.window))
	return kb, tables, nil
}
