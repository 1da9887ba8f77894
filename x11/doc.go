// Package x11 drives an X11 desktop through the xdotool command line tool.
//
// Every call runs one xdotool process and blocks until it exits. Commands
// are built as argument vectors; no shell is involved.
package x11
