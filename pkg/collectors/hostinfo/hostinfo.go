// Package hostinfo collects OS identity, hostname, and uptime.
package hostinfo

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/danpilch/sysnap/pkg/snapshot"
)

// Collector gathers the host fields of a snapshot.
type Collector struct{}

// New creates a new host info collector.
func New() *Collector {
	return &Collector{}
}

// Name returns the collector name.
func (c *Collector) Name() string {
	return "host"
}

// Collect fills OS name/version, hostname, and uptime. The OS name always
// ends up set (runtime.GOOS at worst); the hostname comes from the OS call
// with host.Info as a fallback.
func (c *Collector) Collect(_ snapshot.Options, snap *snapshot.Snapshot) error {
	info, err := host.Info()
	if err == nil {
		if info.OS != "" {
			snap.OSName = info.OS
		}
		if version := osVersion(info); version != "" {
			snap.OSVersion = snapshot.String(version)
		}
		if info.Uptime > 0 {
			snap.UptimeSeconds = snapshot.Uint(info.Uptime)
		}
	}
	if snap.OSName == "" {
		snap.OSName = runtime.GOOS
	}

	if name, herr := os.Hostname(); herr == nil && name != "" {
		snap.Hostname = name
	} else if err == nil && info.Hostname != "" {
		snap.Hostname = info.Hostname
	}

	if err != nil {
		return fmt.Errorf("reading host info: %w", err)
	}
	return nil
}

// osVersion prefers the distribution identity, falling back to the kernel
// version.
func osVersion(info *host.InfoStat) string {
	switch {
	case info.Platform != "" && info.PlatformVersion != "":
		return info.Platform + " " + info.PlatformVersion
	case info.PlatformVersion != "":
		return info.PlatformVersion
	default:
		return info.KernelVersion
	}
}
