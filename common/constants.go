package common

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.deskgate.app"
	// AppName is the display name of the application.
	AppName = "Deskgate"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "deskgate"
)

// File names used by the application.
const (
	ConfigFileName = "config.yaml"
	LogFileName    = "deskgate.log"
)

// UI constants.
const (
	// DefaultWindowWidth is the default main window width.
	DefaultWindowWidth = 480
	// DefaultWindowHeight is the default main window height.
	DefaultWindowHeight = 360
	// TrayIconSize is the size of the system tray icon.
	TrayIconSize = 22
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)
