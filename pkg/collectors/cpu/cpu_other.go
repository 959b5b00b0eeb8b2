//go:build !linux

package cpu

import "github.com/danpilch/sysnap/pkg/snapshot"

// collectFrequency uses the single frequency gopsutil reports. Min/max are
// not exposed outside Linux sysfs and stay absent.
func (c *Collector) collectFrequency(snap *snapshot.Snapshot) {
	if mhz, err := currentMHzFromInfo(); err == nil {
		snap.FreqCurrentMHz = snapshot.Float(mhz)
	}
}

// collectExtras is a no-op: feature flags and cache sizes come from
// /proc and sysfs, which only exist on Linux.
func collectExtras(_ *snapshot.Snapshot) {}
