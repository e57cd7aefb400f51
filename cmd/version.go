// =============================================================================
// HTML Table Converter - Version Information
// =============================================================================
//
// These variables are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/ibzib/htmltable/cmd.Version=1.1.0' \
//     -X 'github.com/ibzib/htmltable/cmd.BuildDate=2026-10-19'"
//
// OUTPUT of "htmltable --version":
//   htmltable
//   Version:    1.1.0
//   Build Date: 2026-10-19
//   Go Version: go1.24.11
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"
)

// Version is the application version.
var Version = "1.1.0"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

// versionTemplate renders the --version output.
func versionTemplate() string {
	return fmt.Sprintf("htmltable\nVersion:    {{.Version}}\nBuild Date: %s\nGo Version: %s\n",
		BuildDate, runtime.Version())
}
