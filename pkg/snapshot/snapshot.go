// Package snapshot defines the system snapshot value object and the
// gatherer that fills it from registered collectors.
package snapshot

import "time"

// Snapshot is a one-time capture of CPU, memory, and host information.
// OS-derived fields are pointers: a nil field means the metric was
// unavailable on this platform and serializes as JSON null. The snapshot
// is built once per run and read-only afterwards.
type Snapshot struct {
	CPUBrand        *string     `json:"cpu_brand"`
	Architecture    *string     `json:"architecture"`
	PhysicalCores   *int        `json:"physical_cores"`
	LogicalCores    *int        `json:"logical_cores"`
	FreqMinMHz      *float64    `json:"freq_min_mhz"`
	FreqMaxMHz      *float64    `json:"freq_max_mhz"`
	FreqCurrentMHz  *float64    `json:"freq_current_mhz"`
	CPUUsagePercent *float64    `json:"cpu_usage_percent"`
	CPUFeatures     []string    `json:"cpu_features"`
	CPUCache        *CacheSizes `json:"cpu_cache"`

	OSName        string  `json:"os_name"`
	OSVersion     *string `json:"os_version"`
	Hostname      string  `json:"hostname"`
	UptimeSeconds *uint64 `json:"uptime_seconds"`

	MemTotalBytes     *uint64 `json:"mem_total_bytes"`
	MemAvailableBytes *uint64 `json:"mem_available_bytes"`
}

// CacheSizes holds per-level CPU cache size labels as reported by sysfs
// (e.g. "32K", "1024K").
type CacheSizes struct {
	L1 *string `json:"l1"`
	L2 *string `json:"l2"`
	L3 *string `json:"l3"`
}

// Options controls which fields a collection attempts.
type Options struct {
	// Full enables optional, potentially slower probes: the CPU usage
	// sample window, feature flags, and cache sizes.
	Full bool

	// SampleWindow bounds the CPU usage measurement interval. Zero means
	// DefaultSampleWindow.
	SampleWindow time.Duration
}

// DefaultSampleWindow is the CPU usage measurement interval used when none
// is configured.
const DefaultSampleWindow = 250 * time.Millisecond

// maxSampleWindow keeps the tool responsive even with a misconfigured
// interval.
const maxSampleWindow = 900 * time.Millisecond

// Window returns the effective sampling window, clamped to stay sub-second.
func (o Options) Window() time.Duration {
	w := o.SampleWindow
	if w <= 0 {
		w = DefaultSampleWindow
	}
	if w > maxSampleWindow {
		w = maxSampleWindow
	}
	return w
}

// String returns a pointer to s for optional snapshot fields.
func String(s string) *string { return &s }

// Int returns a pointer to i for optional snapshot fields.
func Int(i int) *int { return &i }

// Float returns a pointer to f for optional snapshot fields.
func Float(f float64) *float64 { return &f }

// Uint returns a pointer to u for optional snapshot fields.
func Uint(u uint64) *uint64 { return &u }
