// Package common provides shared constants, errors, and utilities used
// throughout the Deskgate application, plus the application logger.
//
// This package is the foundation for cross-cutting concerns:
//
//   - Constants: application identity, file names, and UI dimensions
//   - Errors: sentinel errors for consistent error handling across packages
//   - Logger: leveled logging with optional rotating file output
//   - Utils: small helpers for config-directory and file handling
//
// # Usage
//
//	import "github.com/mrosell/deskgate/common"
//
//	common.LogInfo("Starting %s v%s", common.AppName, version)
//
//	if errors.Is(err, common.ErrNoDisplay) {
//	    // Fall back to the terminal mode
//	}
//
// Nothing in this package depends on a rendering layer; both the GTK
// window and the terminal mode build on it.
package common
