package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/rpdg/automations"
	"github.com/rpdg/automations/x11"
)

func main() {
	target := flag.String("window", "gedit", "window name or class to type into")
	flag.Parse()

	fmt.Println("=== automations: X11 Example ===")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tool := x11.NewTool()
	windows := x11.NewWindows(tool)

	// 1. Find Window
	waitCtx, waitCancel := context.WithTimeout(ctx, 5*time.Second)
	ids, err := windows.WaitFor(waitCtx, *target, 200*time.Millisecond)
	waitCancel()
	if err != nil {
		if errors.Is(err, automations.ErrBackendUnavailable) {
			log.Fatal("xdotool is not installed")
		}
		log.Fatalf("no window matching %q: %v", *target, err)
	}
	fmt.Printf("Found window %v\n", ids[0])

	if err := windows.Activate(ctx, ids[0]); err != nil {
		log.Fatal(err)
	}

	// 2. Keyboard
	fmt.Println("Typing text...")
	sim := automations.New(x11.NewKeyboard(tool))
	if err := sim.Simulate(ctx, "Hello from automations!{ENTER}Grüße, 5€{TAB}done\n", false); err != nil {
		var ee *automations.ExecError
		if errors.As(err, &ee) {
			log.Fatalf("instruction %d failed: %v", ee.Index, ee.Err)
		}
		log.Fatal(err)
	}

	// Remove the trailing newline again
	if err := sim.Delete(ctx, false); err != nil {
		log.Fatal(err)
	}
	time.Sleep(500 * time.Millisecond)

	// 3. Mouse (right click opens the context menu)
	fmt.Println("Testing right click...")
	mouse := x11.NewMouse(tool)
	x, y, err := mouse.Position(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if err := mouse.ClickAt(ctx, x, y, x11.ButtonRight); err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Done ===")
}
