package output

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danpilch/sysnap/pkg/snapshot"
)

// featureLimit caps the flag list in the summary row before it gets noisy.
const featureLimit = 10

func strValue(v *string) string {
	if v == nil || *v == "" {
		return Unknown
	}
	return *v
}

func intValue(v *int) string {
	if v == nil {
		return Unknown
	}
	return fmt.Sprintf("%d", *v)
}

func uintValue(v *uint64) string {
	if v == nil {
		return Unknown
	}
	return fmt.Sprintf("%d", *v)
}

func floatValue(v *float64) string {
	if v == nil {
		return Unknown
	}
	return fmt.Sprintf("%.1f", *v)
}

func percentValue(v *float64) string {
	if v == nil {
		return Unknown
	}
	return fmt.Sprintf("%.1f%%", *v)
}

func bytesValue(v *uint64) string {
	if v == nil {
		return Unknown
	}
	return humanize.IBytes(*v)
}

// durationValue renders uptime as days plus hh:mm:ss.
func durationValue(v *uint64) string {
	if v == nil {
		return Unknown
	}
	return formatDuration(*v)
}

func formatDuration(seconds uint64) string {
	days := seconds / 86400
	remainder := seconds % 86400
	hours := remainder / 3600
	minutes := remainder % 3600 / 60
	secs := remainder % 60

	if days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// freqSummary renders the current frequency with the min/max range when at
// least one bound is known.
func freqSummary(snap *snapshot.Snapshot) string {
	current := floatValue(snap.FreqCurrentMHz)
	if snap.FreqMinMHz == nil && snap.FreqMaxMHz == nil {
		return current
	}
	return fmt.Sprintf("%s (min %s, max %s)",
		current, floatValue(snap.FreqMinMHz), floatValue(snap.FreqMaxMHz))
}

// featureList joins feature flags, truncating past featureLimit unless the
// full listing is requested.
func featureList(features []string, full bool) string {
	if len(features) == 0 {
		return Unknown
	}
	if full || len(features) <= featureLimit {
		return strings.Join(features, ", ")
	}
	remaining := len(features) - featureLimit
	return fmt.Sprintf("%s ... (+%d)", strings.Join(features[:featureLimit], ", "), remaining)
}

// cacheSummary renders cache sizes as "L1: 32K, L2: 1M, L3: 8M".
func cacheSummary(cache *snapshot.CacheSizes) string {
	if cache == nil {
		return Unknown
	}

	parts := []string{
		"L1: " + strValue(cache.L1),
		"L2: " + strValue(cache.L2),
		"L3: " + strValue(cache.L3),
	}
	return strings.Join(parts, ", ")
}
