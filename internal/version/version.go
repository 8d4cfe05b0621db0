// Package version carries the build version, overridable with
// -ldflags "-X alnedit/internal/version.Version=...".
package version

var Version = "0.3.0"
