// Package collectors provides interfaces and implementations for snapshot
// field collection.
package collectors

import "github.com/danpilch/sysnap/pkg/snapshot"

// Collector is the interface that all snapshot collectors must implement.
type Collector interface {
	// Name returns the name of the area being collected (e.g., "cpu", "memory").
	Name() string

	// Collect fills the snapshot fields this collector owns. Probes inside
	// a collector are individually fallible; a returned error means the
	// whole area was unavailable.
	Collect(opts snapshot.Options, snap *snapshot.Snapshot) error
}

// Registry holds all registered collectors.
type Registry struct {
	collectors []Collector
}

// NewRegistry creates a new collector registry.
func NewRegistry() *Registry {
	return &Registry{
		collectors: make([]Collector, 0),
	}
}

// Register adds a collector to the registry.
func (r *Registry) Register(c Collector) {
	r.collectors = append(r.collectors, c)
}

// Collectors returns all registered collectors.
func (r *Registry) Collectors() []Collector {
	return r.collectors
}

// GetByName returns a collector by name, or nil if not found.
func (r *Registry) GetByName(name string) Collector {
	for _, c := range r.collectors {
		if c.Name() == name {
			return c
		}
	}
	return nil
}
