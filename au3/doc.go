// Package au3 wraps the AutoItX3 library on Windows.
//
// AutoItX3.dll (AutoItX3_x64.dll for 64-bit processes) must be on the DLL
// search path. Strings cross the boundary as UTF-16LE; see EncodeUTF16LE
// and DecodeUTF16LE.
//
// Example:
//
//	c, err := au3.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	sim := automations.New(c.Keyboard(), automations.WithTables(au3.Tables()))
//	sim.Simulate(ctx, "Hello{ENTER}", false)
package au3
