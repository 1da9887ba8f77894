package x11

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rpdg/automations"
)

func TestKeyboardArgs(t *testing.T) {
	ctx := context.Background()
	fr := newFakeRunner()
	kb := NewKeyboard(NewTool(WithRunner(fr)))

	steps := []func() error{
		func() error { return kb.Type(ctx, "-n hello") },
		func() error { return kb.Key(ctx, "ctrl+c") },
		func() error { return kb.KeyDown(ctx, "ä") },
		func() error { return kb.KeyUp(ctx, "a") },
		func() error { return kb.ForWindow(42).Key(ctx, "Return") },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d error = %v", i, err)
		}
	}

	want := [][]string{
		{"type", "--", "-n hello"},
		{"key", "ctrl+c"},
		{"keydown", "adiaeresis"},
		{"keyup", "a"},
		{"key", "--window", "42", "Return"},
	}
	if diff := cmp.Diff(want, fr.calls); diff != "" {
		t.Errorf("xdotool args mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyboardTypeDelay(t *testing.T) {
	fr := newFakeRunner()
	tool := NewTool(WithRunner(fr), WithConfig(Config{TypeDelayMS: 25}))

	if err := NewKeyboard(tool).ForWindow(7).Type(context.Background(), "x"); err != nil {
		t.Fatalf("Type error = %v", err)
	}
	want := [][]string{{"type", "--window", "7", "--delay", "25", "--", "x"}}
	if diff := cmp.Diff(want, fr.calls); diff != "" {
		t.Errorf("xdotool args mismatch (-want +got):\n%s", diff)
	}
	if fr.name != "xdotool" {
		t.Errorf("WithConfig lost default binary, got %q", fr.name)
	}
}

func TestKeyboardSimulate(t *testing.T) {
	fr := newFakeRunner()
	sim := automations.New(NewKeyboard(NewTool(WithRunner(fr))))

	if err := sim.Simulate(context.Background(), "ab{TAB}c{TAB}{TAB}d€", false); err != nil {
		t.Fatalf("Simulate error = %v", err)
	}
	want := [][]string{
		{"type", "--", "ab"},
		{"key", "Tab"},
		{"type", "--", "c"},
		{"key", "Tab"},
		{"key", "Tab"},
		{"type", "--", "d"},
		{"key", "EuroSign"},
	}
	if diff := cmp.Diff(want, fr.calls); diff != "" {
		t.Errorf("xdotool args mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyboardInvalidKeyStopsSimulation(t *testing.T) {
	fr := newFakeRunner().on("key", response{stderr: "No such key name 'Bogus'"})
	sim := automations.New(NewKeyboard(NewTool(WithRunner(fr))))

	err := sim.Simulate(context.Background(), "a{bogus}b", false)
	if !errors.Is(err, automations.ErrInvalidKey) {
		t.Fatalf("Simulate error = %v, want ErrInvalidKey", err)
	}
	if len(fr.calls) != 2 {
		t.Errorf("xdotool ran %d times, want 2", len(fr.calls))
	}
}
