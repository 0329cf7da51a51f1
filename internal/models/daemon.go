package models

import (
	"fmt"
	"time"
)

// DaemonInfo represents the daemon connection information.
// This corresponds to ~/.huddle/daemon.yaml.
type DaemonInfo struct {
	Version    int       `yaml:"version"`
	Host       string    `yaml:"host"`
	Port       int       `yaml:"port"`
	PID        int       `yaml:"pid"`
	StartedAt  time.Time `yaml:"started_at"`
	AppVersion string    `yaml:"app_version,omitempty"`
}

// NewDaemonInfo creates a new daemon info with current values.
func NewDaemonInfo(host string, port, pid int, appVersion string) *DaemonInfo {
	return &DaemonInfo{
		Version:    1,
		Host:       host,
		Port:       port,
		PID:        pid,
		StartedAt:  time.Now().UTC(),
		AppVersion: appVersion,
	}
}

// Address returns the host:port the daemon RPC server listens on.
func (d *DaemonInfo) Address() string {
	return fmt.Sprintf("%s:%d", d.Host, d.Port)
}
