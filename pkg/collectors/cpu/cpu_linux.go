//go:build linux

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/danpilch/sysnap/pkg/snapshot"
)

const (
	cpuinfoPath = "/proc/cpuinfo"
	cpufreqDir  = "/sys/devices/system/cpu/cpu0/cpufreq"
	cacheDir    = "/sys/devices/system/cpu/cpu0/cache"
)

// collectFrequency reads cpufreq sysfs values (reported in kHz) and falls
// back to the /proc-derived value gopsutil reports for the current
// frequency.
func (c *Collector) collectFrequency(snap *snapshot.Snapshot) {
	if mhz, err := readFreqMHz(cpufreqDir, "cpuinfo_min_freq"); err == nil {
		snap.FreqMinMHz = snapshot.Float(mhz)
	}
	if mhz, err := readFreqMHz(cpufreqDir, "cpuinfo_max_freq"); err == nil {
		snap.FreqMaxMHz = snapshot.Float(mhz)
	}
	if mhz, err := readFreqMHz(cpufreqDir, "scaling_cur_freq"); err == nil {
		snap.FreqCurrentMHz = snapshot.Float(mhz)
	} else if mhz, err := currentMHzFromInfo(); err == nil {
		snap.FreqCurrentMHz = snapshot.Float(mhz)
	}
}

// collectExtras fills feature flags and cache sizes, both best effort.
func collectExtras(snap *snapshot.Snapshot) {
	if flags, err := readCPUFlags(cpuinfoPath); err == nil && len(flags) > 0 {
		snap.CPUFeatures = flags
	}
	if sizes, err := readCacheSizes(cacheDir); err == nil && sizes != nil {
		snap.CPUCache = sizes
	}
}

// readFreqMHz reads one cpufreq file and converts kHz to MHz.
func readFreqMHz(dir, name string) (float64, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return 0, err
	}

	khz, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, err
	}
	if khz <= 0 {
		return 0, fmt.Errorf("non-positive frequency in %s", name)
	}
	return khz / 1000, nil
}

// readCPUFlags extracts the feature flag list from /proc/cpuinfo.
func readCPUFlags(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseCPUFlags(file)
}

// parseCPUFlags scans cpuinfo content for the first "flags" line, or the
// "Features" line ARM kernels use instead.
func parseCPUFlags(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "flags") && !strings.HasPrefix(line, "Features") {
			continue
		}

		_, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		flags := strings.Fields(value)
		if len(flags) > 0 {
			return flags, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("no flags line in cpuinfo")
}

// readCacheSizes walks the sysfs cache index directories for cpu0 and keeps
// the largest size label per level. Instruction and data caches share a
// level, so L1 ends up as whichever is bigger.
func readCacheSizes(dir string) (*snapshot.CacheSizes, error) {
	indexes, err := filepath.Glob(filepath.Join(dir, "index*"))
	if err != nil {
		return nil, err
	}

	bestBytes := make(map[string]uint64)
	bestLabel := make(map[string]string)

	for _, idx := range indexes {
		level, err := os.ReadFile(filepath.Join(idx, "level"))
		if err != nil {
			continue
		}
		size, err := os.ReadFile(filepath.Join(idx, "size"))
		if err != nil {
			continue
		}

		label := strings.TrimSpace(string(size))
		bytes, ok := parseCacheSize(label)
		if !ok {
			continue
		}

		key := "L" + strings.TrimSpace(string(level))
		if bytes > bestBytes[key] {
			bestBytes[key] = bytes
			bestLabel[key] = label
		}
	}

	if len(bestLabel) == 0 {
		return nil, fmt.Errorf("no cache sizes in %s", dir)
	}

	sizes := &snapshot.CacheSizes{}
	if label, ok := bestLabel["L1"]; ok {
		sizes.L1 = snapshot.String(label)
	}
	if label, ok := bestLabel["L2"]; ok {
		sizes.L2 = snapshot.String(label)
	}
	if label, ok := bestLabel["L3"]; ok {
		sizes.L3 = snapshot.String(label)
	}
	return sizes, nil
}

// parseCacheSize converts a sysfs size label such as "32K" or "8M" to bytes.
func parseCacheSize(text string) (uint64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	multiplier := uint64(1)
	switch text[len(text)-1] {
	case 'K', 'k':
		multiplier = 1024
		text = text[:len(text)-1]
	case 'M', 'm':
		multiplier = 1024 * 1024
		text = text[:len(text)-1]
	case 'G', 'g':
		multiplier = 1024 * 1024 * 1024
		text = text[:len(text)-1]
	}

	value, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, false
	}
	return value * multiplier, true
}
