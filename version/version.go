// Package version provides build version information for the module.
// The default requester advertises it in the User-Agent header.
package version

import "runtime/debug"

// Version is overridden at build time using -ldflags.
var Version = "dev"

// Get returns the module version: the -ldflags value when set, otherwise
// the version recorded in the build info.
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}

// UserAgent returns the User-Agent value sent by the default requester.
func UserAgent() string {
	return "apikit/" + Get()
}
