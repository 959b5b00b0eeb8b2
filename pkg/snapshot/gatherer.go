package snapshot

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Collector fills part of a snapshot.
type Collector interface {
	Name() string
	Collect(opts Options, snap *Snapshot) error
}

// Gatherer orchestrates the collection of snapshot fields from multiple
// collectors.
type Gatherer struct {
	opts   Options
	logger *logrus.Logger
}

// NewGatherer creates a new gatherer.
func NewGatherer(opts Options, logger *logrus.Logger) *Gatherer {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	return &Gatherer{
		opts:   opts,
		logger: logger,
	}
}

// Gather runs all collectors in order against a fresh snapshot. A failing
// collector is logged and skipped; the fields it could not fill stay nil.
// Collection fails only when no hostname could be determined.
func (g *Gatherer) Gather(collectors []Collector) (*Snapshot, error) {
	snap := &Snapshot{}

	for _, collector := range collectors {
		g.logger.WithField("collector", collector.Name()).Debug("Running collector")

		if err := collector.Collect(g.opts, snap); err != nil {
			g.logger.WithFields(logrus.Fields{
				"collector": collector.Name(),
				"error":     err,
			}).Warn("Collector failed")
		}
	}

	if snap.Hostname == "" {
		return nil, fmt.Errorf("hostname could not be determined")
	}
	if snap.OSName == "" {
		snap.OSName = runtime.GOOS
	}

	return snap, nil
}
