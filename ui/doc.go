// Package ui provides the GTK4 rendering layer for Deskgate.
//
// The package draws the two pages owned by the navigation shell inside
// a gtk.Stack and keeps the visible child in sync with the shell's
// active slot. It holds no navigation state of its own: user input is
// forwarded to the shell's pages, and the stack follows the shell
// through its slot-change observer.
//
//   - Application: GTK application lifecycle management
//   - MainWindow: window, header bar, and the two stacked pages
//   - TrayIndicator: system tray integration for background operation
//   - styles.go: CSS styling and theme support
//   - icons.go: icon generation for the tray
//
// # Thread Safety
//
// GTK operations must execute on the main thread. The tray indicator
// runs on its own goroutine; it schedules window operations through
// glib.IdleAdd().
package ui
