// Package tray implements the system tray icon and menu for the daemon.
package tray

// DaemonState provides read-only access to daemon state for the tray, plus
// the two actions the menu can trigger.
type DaemonState interface {
	Port() int
	ProjectCount() int
	LastGenerated() string // human-readable, empty before the first run
	Refresh()
	RequestShutdown()
}
