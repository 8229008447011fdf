// Package version provides build-time version information for the
// mensaplan CLI.
//
// Variables in this package are set at build time using ldflags:
//
//	go build -ldflags "-X github.com/mensaplan/mensaplan/internal/version.Version=1.0.0 ..."
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables set via ldflags
var (
	// Version is the semantic version (e.g., "1.0.0")
	Version = "dev"

	// Commit is the git commit SHA
	Commit = "unknown"

	// BuildDate is the UTC build timestamp in RFC3339 format
	BuildDate = "unknown"
)

// String returns a single-line version string.
func String() string {
	return Version
}

// Full returns a multi-line version string with all details.
func Full() string {
	return fmt.Sprintf("mensaplan %s\n  Commit:     %s\n  Built:      %s\n  Go version: %s\n  OS/Arch:    %s/%s",
		Version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
