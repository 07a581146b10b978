package ui

import (
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/mrosell/deskgate/backend"
	"github.com/mrosell/deskgate/common"
	"github.com/mrosell/deskgate/config"
	"github.com/mrosell/deskgate/shell"
)

// Application represents the main application.
type Application struct {
	app     *gtk.Application
	window  *MainWindow
	shell   *shell.Shell
	backend *backend.Backend
	config  *config.Config
	version string
	tray    *TrayIndicator
}

// NewApplication creates a new application. The navigation shell and
// the demo backend are constructed here and live as long as the
// application.
func NewApplication(appID, version string) *Application {
	app := gtk.NewApplication(appID, gio.ApplicationFlagsNone)

	cfg, err := config.Load()
	if err != nil {
		common.LogWarn("Using default configuration: %v", err)
		cfg = config.Default()
	}

	application := &Application{
		app:     app,
		shell:   shell.New(),
		backend: backend.New(),
		config:  cfg,
		version: version,
	}

	app.ConnectActivate(application.onActivate)

	return application
}

// Run runs the application.
func (a *Application) Run(args []string) int {
	return a.app.Run(args)
}

// onActivate is called when the application is activated.
func (a *Application) onActivate() {
	a.ApplyTheme(a.config.Theme)
	LoadStyles()

	a.window = NewMainWindow(a)
	a.window.Show()

	if a.config.ShowTray {
		a.tray = NewTrayIndicator(a)
		go a.tray.Run()
	}
}

// Shell returns the navigation shell.
func (a *Application) Shell() *shell.Shell {
	return a.shell
}

// Backend returns the demo backend.
func (a *Application) Backend() *backend.Backend {
	return a.backend
}

// Config returns the configuration.
func (a *Application) Config() *config.Config {
	return a.config
}

// Version returns the application version.
func (a *Application) Version() string {
	return a.version
}

// ApplyTheme applies the specified theme to the application.
// Supported values: "auto" (system default), "light", "dark".
func (a *Application) ApplyTheme(theme string) {
	settings := gtk.SettingsGetDefault()
	if settings == nil {
		return
	}

	switch theme {
	case common.ThemeLight:
		settings.SetObjectProperty("gtk-application-prefer-dark-theme", false)
	case common.ThemeDark:
		settings.SetObjectProperty("gtk-application-prefer-dark-theme", true)
	default:
		// "auto": follow the system color scheme, don't override.
	}
}

// presentWindow raises the main window.
func (a *Application) presentWindow() {
	if a.window != nil {
		a.window.window.Present()
	}
}

// Quit closes the application.
func (a *Application) Quit() {
	a.app.Quit()
}
