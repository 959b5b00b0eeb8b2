// Package cpu collects CPU identity, topology, frequency, and utilization.
package cpu

import (
	"fmt"
	"math"
	"strings"
	"time"

	gopscpu "github.com/shirou/gopsutil/v3/cpu"

	"github.com/danpilch/sysnap/pkg/snapshot"
)

// Collector gathers the CPU fields of a snapshot.
type Collector struct{}

// New creates a new CPU collector.
func New() *Collector {
	return &Collector{}
}

// Name returns the collector name.
func (c *Collector) Name() string {
	return "cpu"
}

// Collect fills the CPU fields. Each probe is independent: a probe that
// fails leaves its fields nil and the remaining probes still run.
func (c *Collector) Collect(opts snapshot.Options, snap *snapshot.Snapshot) error {
	if brand, err := c.brand(); err == nil && brand != "" {
		snap.CPUBrand = snapshot.String(brand)
	}

	if arch, err := machineArch(); err == nil && arch != "" {
		snap.Architecture = snapshot.String(arch)
	}

	if n, err := gopscpu.Counts(false); err == nil && n > 0 {
		snap.PhysicalCores = snapshot.Int(n)
	}
	if n, err := gopscpu.Counts(true); err == nil && n > 0 {
		snap.LogicalCores = snapshot.Int(n)
	}

	c.collectFrequency(snap)

	if opts.Full {
		if usage, err := c.usage(opts.Window()); err == nil {
			snap.CPUUsagePercent = snapshot.Float(usage)
		}
		collectExtras(snap)
	}

	return nil
}

// brand returns the vendor/model string.
func (c *Collector) brand() (string, error) {
	infos, err := gopscpu.Info()
	if err != nil {
		return "", err
	}
	if len(infos) == 0 {
		return "", fmt.Errorf("no cpu info reported")
	}
	return strings.TrimSpace(infos[0].ModelName), nil
}

// usage samples overall CPU utilization over the given window and rounds
// it to one decimal place.
func (c *Collector) usage(window time.Duration) (float64, error) {
	pcts, err := gopscpu.Percent(window, false)
	if err != nil {
		return 0, err
	}
	if len(pcts) == 0 {
		return 0, fmt.Errorf("no cpu usage reported")
	}
	return math.Round(pcts[0]*10) / 10, nil
}

// currentMHzFromInfo returns the frequency gopsutil reports, used where no
// better source exists.
func currentMHzFromInfo() (float64, error) {
	infos, err := gopscpu.Info()
	if err != nil {
		return 0, err
	}
	if len(infos) == 0 || infos[0].Mhz <= 0 {
		return 0, fmt.Errorf("no cpu frequency reported")
	}
	return infos[0].Mhz, nil
}
