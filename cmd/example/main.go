package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/rpdg/automations"
	"github.com/rpdg/automations/keyboard"
)

type options struct {
	raw     bool
	window  uint64
	dryRun  bool
	config  string
	display string
	verbose bool
}

func main() {
	var opts options
	flag.BoolVar(&opts.raw, "raw", false, "type {...} escape sequences literally")
	flag.Uint64Var(&opts.window, "window", 0, "target window id (X11 only, 0 = active window)")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "print the instructions instead of sending them")
	flag.StringVar(&opts.config, "config", "", "TOML file with [aliases], [special] and [x11] sections")
	flag.StringVar(&opts.display, "display", "", "X display to use (X11 only)")
	flag.BoolVar(&opts.verbose, "v", false, "log every instruction")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] text...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	text := strings.Join(flag.Args(), " ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, opts, text); err != nil {
		var pe *keyboard.ParseError
		switch {
		case errors.As(err, &pe):
			logger.Error("invalid input", "err", err)
			os.Exit(2)
		case errors.Is(err, automations.ErrBackendUnavailable), errors.Is(err, automations.ErrDLLLoadFailed):
			logger.Error("no input backend", "err", err)
		default:
			logger.Error("simulate failed", "err", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, opts options, text string) error {
	tables := baseTables()
	if opts.config != "" {
		t, err := tables.LoadFile(opts.config)
		if err != nil {
			return err
		}
		tables = t
	}

	if opts.dryRun {
		ins, err := tables.Parse(text, opts.raw)
		if err != nil {
			return err
		}
		for _, in := range ins {
			fmt.Println(in)
		}
		return nil
	}

	backend, tables, err := newBackend(logger, opts, tables)
	if err != nil {
		return err
	}
	sim := automations.New(backend,
		automations.WithTables(tables),
		automations.WithLogger(logger),
	)
	return sim.Simulate(ctx, text, opts.raw)
}
