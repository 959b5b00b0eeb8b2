// Package memory collects physical memory totals for a snapshot.
package memory

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/danpilch/sysnap/pkg/snapshot"
)

// Collector gathers the memory fields of a snapshot.
type Collector struct{}

// New creates a new memory collector.
func New() *Collector {
	return &Collector{}
}

// Name returns the collector name.
func (c *Collector) Name() string {
	return "memory"
}

// Collect fills memory totals from the OS virtual memory statistics.
func (c *Collector) Collect(_ snapshot.Options, snap *snapshot.Snapshot) error {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("reading virtual memory: %w", err)
	}

	snap.MemTotalBytes = snapshot.Uint(vm.Total)
	snap.MemAvailableBytes = snapshot.Uint(vm.Available)
	return nil
}
