// Package keyboard translates keystroke strings into backend instructions.
//
// Input may contain escape sequences in braces that name a key, such as
// "{ESC}" or "{shift_a}". Characters the text path cannot produce, like
// "ä" or "\n", are sent as named keys instead:
//
//	ins, err := keyboard.Parse("Ab{ESC}c€", false)
//	// [type "Ab", key "Escape", type "c", key "EuroSign"]
//
// Parsing is pure. Instructions are executed by a backend such as the x11
// or au3 packages, in the order returned.
package keyboard
