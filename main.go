// Package main provides the entry point for Deskgate, a minimal
// desktop client shell: a page-switching window with a connect screen
// and a login screen, plus a demo backend bound to the rendering layer.
//
// Usage:
//
//	deskgate [options]
//
// By default the GTK4 window is shown. When no display server is
// available and a terminal is attached, or when -tui is given, the
// terminal mode is used instead.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/mrosell/deskgate/common"
	"github.com/mrosell/deskgate/tui"
	"github.com/mrosell/deskgate/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z).
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	useTUI      = flag.Bool("tui", false, "Run in the terminal instead of opening a window")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogOptions{
		Level:      logLevel,
		EnableFile: true,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	if *useTUI || !displayAvailable() {
		runTerminal()
		return
	}

	common.LogInfo("Starting %s v%s", common.AppName, appVersion)
	app := ui.NewApplication(common.AppID, appVersion)
	exitCode := app.Run(os.Args)

	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	os.Exit(exitCode)
}

// runTerminal runs the Bubble Tea mode, or fails when neither a
// display nor a usable terminal exists.
func runTerminal() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		common.LogError("No display server and no terminal attached")
		fmt.Fprintf(os.Stderr, "Error: %v\n", common.ErrNoDisplay)
		os.Exit(1)
	}

	if err := tui.Run(); err != nil {
		common.LogError("Terminal mode failed: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// displayAvailable reports whether an X11 or Wayland display server
// can be reached.
func displayAvailable() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
