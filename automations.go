package automations

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rpdg/automations/keyboard"
)

// Backend injects input into the desktop. Calls are made one instruction
// at a time, in order, and may block.
type Backend interface {
	// TypeLiteral types text without interpreting any escape syntax.
	TypeLiteral(ctx context.Context, text string) error
	// PressKey presses and releases the named key or key combination.
	PressKey(ctx context.Context, name string) error
}

// ExecError reports which instruction a backend failed on.
type ExecError struct {
	Index       int
	Instruction keyboard.Instruction
	Err         error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("instruction %d (%v): %v", e.Index, e.Instruction, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// -----------------------------------------------------------------------------
// Simulator
// -----------------------------------------------------------------------------

type Simulator struct {
	backend Backend
	tables  *keyboard.Tables
	logger  *slog.Logger
}

type Option func(*Simulator)

// WithTables sets the alias and special-character tables.
func WithTables(t *keyboard.Tables) Option {
	return func(s *Simulator) {
		if t != nil {
			s.tables = t
		}
	}
}

// WithLogger sets the logger. Executed instructions are logged at Debug.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(backend Backend, opts ...Option) *Simulator {
	s := &Simulator{
		backend: backend,
		tables:  keyboard.DefaultTables(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tables returns the tables used for parsing.
func (s *Simulator) Tables() *keyboard.Tables { return s.tables }

// Plan returns the instructions Simulate would execute for str.
func (s *Simulator) Plan(str string, raw bool) ([]keyboard.Instruction, error) {
	return s.tables.Parse(str, raw)
}

// Simulate types str, sending {...} escape sequences and special characters
// as key presses. If raw is true escape sequences are typed literally.
//
// The whole string is parsed before anything is sent, so a malformed
// string produces no input at all.
func (s *Simulator) Simulate(ctx context.Context, str string, raw bool) error {
	ins, err := s.Plan(str, raw)
	if err != nil {
		return err
	}
	return s.execute(ctx, ins)
}

// Delete deletes one character, to the right with Delete if right is true,
// otherwise to the left with BackSpace.
func (s *Simulator) Delete(ctx context.Context, right bool) error {
	if right {
		return s.Simulate(ctx, "{DEL}", false)
	}
	return s.Simulate(ctx, "\b", false)
}

// Execute runs instructions against backend in order, stopping at the
// first error.
func Execute(ctx context.Context, backend Backend, ins []keyboard.Instruction) error {
	return New(backend).execute(ctx, ins)
}

func (s *Simulator) execute(ctx context.Context, ins []keyboard.Instruction) error {
	if s.backend == nil {
		return ErrBackendUnavailable
	}
	for i, in := range ins {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch in.Op {
		case keyboard.TypeLiteral:
			err = s.backend.TypeLiteral(ctx, in.Text)
		case keyboard.PressKey:
			err = s.backend.PressKey(ctx, in.Text)
		default:
			err = fmt.Errorf("%w: unknown op %v", ErrInvalidArgument, in.Op)
		}
		if err != nil {
			s.logger.Warn("instruction failed", "index", i, "op", in.Op.String(), "text", in.Text, "err", err)
			return &ExecError{Index: i, Instruction: in, Err: err}
		}
		s.logger.Debug("instruction", "index", i, "op", in.Op.String(), "text", in.Text)
	}
	return nil
}
