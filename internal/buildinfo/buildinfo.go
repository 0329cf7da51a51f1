// Package buildinfo holds version information injected at build time via ldflags.
package buildinfo

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Short returns "huddle/<version>" for User-Agent strings and log lines.
func Short() string {
	return "huddle/" + Version
}
