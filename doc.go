// Package automations simulates keyboard input on X11 and Windows desktops.
// Keystroke strings are parsed by the keyboard package and executed by a
// backend: the x11 package drives xdotool, the au3 package the AutoItX3
// library.
//
// Key Features:
// - {KEY} escape sequences with configurable aliases
// - Special characters (ä, €, newline) sent as named keys
// - Raw mode that types braces literally
// - Explicit error handling
//
// Example:
//
//  kb := x11.NewKeyboard(x11.NewTool())
//  sim := automations.New(kb)
//  if err := sim.Simulate(ctx, "Hello{TAB}World{ENTER}", false); err != nil {
//      log.Fatal(err)
//  }
//
package automations
