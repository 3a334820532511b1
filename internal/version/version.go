// internal/version/version.go
package version

// Version is the release tag, overridable at link time.
var Version = "0.1.0"
