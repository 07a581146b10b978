// Package shell implements the page-navigation core of Deskgate.
//
// The shell owns the two pages of the application — the connect screen
// and the login screen — inside two fixed display slots, and holds the
// single active-slot selector. Each page exposes exactly one outbound,
// payload-free event through observer registration; the shell wires
// those events to its two transitions at construction:
//
//   - connect requested (connect page)  -> login page becomes active
//   - disconnect requested (login page) -> connect page becomes active
//
// There are no other transitions, no guards, and no error paths. The
// shell starts on the connect page and runs until destroyed.
//
// The package is toolkit-independent: rendering layers (the GTK window
// in package ui, the terminal mode in package tui) observe the selector
// through OnSlotChange and translate user input into page activations.
//
// # Thread Safety
//
// All dispatch is synchronous on the UI thread. Pages and the shell are
// not safe for concurrent use; register observers during construction,
// before the event loop starts.
package shell
