package ui

import (
	"fyne.io/systray"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/mrosell/deskgate/common"
	"github.com/mrosell/deskgate/shell"
)

var trayIcon = GenerateTrayIcon()

// TrayIndicator manages the system tray icon and menu. It lets the
// window hide to the tray and be brought back without quitting.
type TrayIndicator struct {
	app      *Application
	pageItem *systray.MenuItem
	showItem *systray.MenuItem
	quitItem *systray.MenuItem
}

// NewTrayIndicator creates a new system tray indicator. Must be called
// on the main thread: it registers the shell observer that keeps the
// tray's page item current.
func NewTrayIndicator(app *Application) *TrayIndicator {
	t := &TrayIndicator{app: app}

	// Registered before Run so the observer list is never mutated
	// concurrently. systray item updates are safe from the GTK thread.
	app.Shell().OnSlotChange(func(int) {
		t.updatePageItem()
	})

	return t
}

// Run starts the system tray indicator. Blocks; call from a goroutine.
func (t *TrayIndicator) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the systray is ready.
func (t *TrayIndicator) onReady() {
	systray.SetIcon(trayIcon)
	systray.SetTitle(common.AppName)
	systray.SetTooltip(common.AppName)

	t.pageItem = systray.AddMenuItem("", "Currently visible page")
	t.pageItem.Disable()
	t.updatePageItem()

	systray.AddSeparator()

	t.showItem = systray.AddMenuItem("Show Window", "Bring the window to the front")
	go func() {
		for range t.showItem.ClickedCh {
			glib.IdleAdd(func() {
				t.app.presentWindow()
			})
		}
	}()

	t.quitItem = systray.AddMenuItem("Quit", "Quit "+common.AppName)
	go func() {
		for range t.quitItem.ClickedCh {
			glib.IdleAdd(func() {
				t.app.Quit()
			})
			systray.Quit()
		}
	}()
}

// onExit is called when the systray is about to exit.
func (t *TrayIndicator) onExit() {
	common.LogDebug("Tray indicator stopped")
}

// updatePageItem refreshes the tray's page entry from the shell.
func (t *TrayIndicator) updatePageItem() {
	if t.pageItem == nil {
		return
	}

	sh := t.app.Shell()
	label := "Page: " + sh.ActivePage().Title()
	if sh.ActiveSlot() == shell.SlotLogin {
		label += " (connected)"
	}
	t.pageItem.SetTitle(label)
}
