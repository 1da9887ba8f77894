package x11

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/rpdg/automations"
)

// Runner executes an external command.
type Runner interface {
	Run(ctx context.Context, name string, args, env []string) (stdout, stderr []byte, err error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args, env []string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = env
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// CommandError is returned when xdotool fails or rejects its input.
type CommandError struct {
	Args   []string
	Stderr string
	// Kind is automations.ErrInvalidKey or automations.ErrCommandFailed.
	Kind  error
	Cause error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Kind, strings.Join(e.Args, " "))
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (%v)", e.Cause)
	}
	return msg
}

func (e *CommandError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Tool runs xdotool against one X display.
type Tool struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

type Option func(*Tool)

func WithConfig(cfg Config) Option {
	return func(t *Tool) { t.cfg = cfg.withDefaults() }
}

// WithDisplay targets display, e.g. ":1". The default is the DISPLAY of
// the current process.
func WithDisplay(display string) Option {
	return func(t *Tool) { t.cfg.Display = display }
}

func WithRunner(r Runner) Option {
	return func(t *Tool) {
		if r != nil {
			t.runner = r
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Tool) {
		if l != nil {
			t.logger = l
		}
	}
}

func NewTool(opts ...Option) *Tool {
	t := &Tool{
		cfg:    DefaultConfig(),
		runner: ExecRunner{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Config returns the tool's configuration.
func (t *Tool) Config() Config { return t.cfg }

// Run executes xdotool with args and returns its standard output.
func (t *Tool) Run(ctx context.Context, args ...string) ([]byte, error) {
	env := os.Environ()
	if t.cfg.Display != "" {
		env = append(env, "DISPLAY="+t.cfg.Display)
	}

	stdout, stderr, err := t.runner.Run(ctx, t.cfg.Binary, args, env)
	msg := strings.TrimSpace(string(stderr))

	if strings.Contains(msg, "No such key name") {
		return stdout, &CommandError{Args: args, Stderr: msg, Kind: automations.ErrInvalidKey, Cause: err}
	}
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return stdout, fmt.Errorf("%w: %v", automations.ErrBackendUnavailable, err)
		}
		return stdout, &CommandError{Args: args, Stderr: msg, Kind: automations.ErrCommandFailed, Cause: err}
	}
	if msg != "" {
		t.logger.Warn("xdotool wrote to stderr", "args", args, "stderr", msg)
	}
	return stdout, nil
}
