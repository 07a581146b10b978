package ui

import (
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/mrosell/deskgate/common"
	"github.com/mrosell/deskgate/shell"
)

// MainWindow represents the main application window. It renders the
// shell's two pages in a gtk.Stack whose visible child follows the
// shell's active slot.
type MainWindow struct {
	app          *Application
	window       *gtk.ApplicationWindow
	headerBar    *gtk.HeaderBar
	stack        *gtk.Stack
	messageLabel *gtk.Label
}

// NewMainWindow creates a new main window.
func NewMainWindow(app *Application) *MainWindow {
	mw := &MainWindow{
		app: app,
	}

	mw.window = gtk.NewApplicationWindow(app.app)
	mw.window.SetTitle(common.AppName)
	mw.window.SetDefaultSize(common.DefaultWindowWidth, common.DefaultWindowHeight)
	mw.window.SetResizable(false)

	// Clicking X hides the window; the app keeps running in the tray.
	mw.window.SetHideOnClose(app.config.MinimizeToTray && app.config.ShowTray)

	mw.createLayout()

	return mw
}

// createLayout creates the window layout.
func (mw *MainWindow) createLayout() {
	mw.headerBar = gtk.NewHeaderBar()

	menuButton := gtk.NewMenuButton()
	menuButton.SetIconName("open-menu-symbolic")
	menuButton.SetTooltipText("Menu")
	menuButton.SetMenuModel(mw.createMenu())
	mw.headerBar.PackEnd(menuButton)

	// Set header bar as titlebar (prevents double bar)
	mw.window.SetTitlebar(mw.headerBar)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)

	// Page stack: connect page in slot 0, login page in slot 1
	mw.stack = gtk.NewStack()
	mw.stack.SetTransitionType(gtk.StackTransitionTypeSlideLeftRight)
	mw.stack.SetVExpand(true)

	sh := mw.app.Shell()
	mw.stack.AddNamed(mw.buildConnectPage(), shell.PageNameConnect)
	mw.stack.AddNamed(mw.buildLoginPage(), shell.PageNameLogin)
	mw.stack.SetVisibleChildName(sh.ActivePage().Name())

	// The stack follows the shell, never the other way around
	sh.OnSlotChange(func(int) {
		mw.stack.SetVisibleChildName(sh.ActivePage().Name())
	})

	mainBox.Append(mw.stack)
	mainBox.Append(mw.createBackendBar())

	mw.window.SetChild(mainBox)
}

// createMenu creates the application menu.
func (mw *MainWindow) createMenu() *gio.Menu {
	menu := gio.NewMenu()

	appSection := gio.NewMenu()
	appSection.Append("About", "app.about")
	appSection.Append("Quit", "app.quit")
	menu.AppendSection("", &appSection.MenuModel)

	mw.setupActions()

	return menu
}

// setupActions configures menu actions.
func (mw *MainWindow) setupActions() {
	aboutAction := gio.NewSimpleAction("about", nil)
	aboutAction.ConnectActivate(func(_ *glib.Variant) {
		mw.onAbout()
	})
	mw.app.app.AddAction(aboutAction)

	// Quit action (Ctrl+Q)
	quitAction := gio.NewSimpleAction("quit", nil)
	quitAction.ConnectActivate(func(_ *glib.Variant) {
		mw.app.Quit()
	})
	mw.app.app.AddAction(quitAction)
	mw.app.app.SetAccelsForAction("app.quit", []string{"<Control>q"})
}

// buildConnectPage builds the widget tree for the connect page. Its
// single control forwards to the page's connect-requested event.
func (mw *MainWindow) buildConnectPage() *gtk.Box {
	page := mw.app.Shell().ConnectPage()

	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.SetHAlign(gtk.AlignCenter)
	box.SetVAlign(gtk.AlignCenter)

	title := gtk.NewLabel(page.Title())
	title.AddCSSClass("page-title")
	box.Append(title)

	subtitle := gtk.NewLabel("Not connected")
	subtitle.AddCSSClass("page-subtitle")
	box.Append(subtitle)

	connectBtn := gtk.NewButtonWithLabel("Connect")
	connectBtn.AddCSSClass("suggested-action")
	connectBtn.SetMarginTop(12)
	connectBtn.ConnectClicked(func() {
		common.LogDebug("Connect requested")
		page.RequestConnect()
	})
	box.Append(connectBtn)

	return box
}

// buildLoginPage builds the widget tree for the login page. Its single
// control forwards to the page's disconnect-requested event.
func (mw *MainWindow) buildLoginPage() *gtk.Box {
	page := mw.app.Shell().LoginPage()

	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.SetHAlign(gtk.AlignCenter)
	box.SetVAlign(gtk.AlignCenter)

	title := gtk.NewLabel(page.Title())
	title.AddCSSClass("page-title")
	box.Append(title)

	subtitle := gtk.NewLabel("Connected")
	subtitle.AddCSSClass("page-subtitle")
	box.Append(subtitle)

	disconnectBtn := gtk.NewButtonWithLabel("Disconnect")
	disconnectBtn.AddCSSClass("destructive-action")
	disconnectBtn.SetMarginTop(12)
	disconnectBtn.ConnectClicked(func() {
		common.LogDebug("Disconnect requested")
		page.RequestDisconnect()
	})
	box.Append(disconnectBtn)

	return box
}

// createBackendBar builds the bottom bar demonstrating property
// binding: a label re-rendered on the backend's change notification
// and a button invoking its activation handler.
func (mw *MainWindow) createBackendBar() *gtk.Box {
	b := mw.app.Backend()

	bar := gtk.NewBox(gtk.OrientationHorizontal, 12)
	bar.AddCSSClass("backend-bar")
	bar.SetMarginTop(6)
	bar.SetMarginBottom(6)
	bar.SetMarginStart(12)
	bar.SetMarginEnd(12)

	mw.messageLabel = gtk.NewLabel(b.Message())
	mw.messageLabel.AddCSSClass("backend-message")
	mw.messageLabel.SetXAlign(0)
	mw.messageLabel.SetHExpand(true)
	bar.Append(mw.messageLabel)

	// The bound label is just one change handler on the property
	b.Subscribe(func() {
		mw.messageLabel.SetText(b.Message())
	})

	pingBtn := gtk.NewButtonWithLabel("Ping backend")
	pingBtn.AddCSSClass("flat")
	pingBtn.ConnectClicked(b.HandleActivation)
	bar.Append(pingBtn)

	return bar
}

// Show displays the window.
func (mw *MainWindow) Show() {
	mw.window.Show()
}

func (mw *MainWindow) onAbout() {
	about := gtk.NewAboutDialog()
	about.SetTransientFor(&mw.window.Window)
	about.SetModal(true)

	about.SetProgramName(common.AppName)
	about.SetVersion(mw.app.Version())
	about.SetComments("Minimal desktop client shell.\nA page-switching window with a connect and a login screen.")

	about.Show()
}
