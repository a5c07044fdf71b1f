package js

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("extdoc.aggregator")

// Aggregator feeds documentation nodes from source units into the class
// registry and the orphan pool. One aggregator represents one
// aggregation session: class state and pooled orphans persist across
// units, while the "current class" context is scoped to a single unit.
//
// Ingestion is strictly sequential. Merge semantics are order-sensitive
// (the first-seen class record is authoritative), so source units must
// be ingested one at a time in a caller-determined order.
type Aggregator struct {
	registry  *Registry
	orphans   orphanPool
	finalized bool
}

// NewAggregator starts a new aggregation session.
func NewAggregator() *Aggregator {
	return &Aggregator{
		registry: NewRegistry(),
	}
}

// Registry exposes the session's class registry for read access.
func (a *Aggregator) Registry() *Registry {
	return a.registry
}

// Ingest consumes one source unit's node sequence. Class nodes register
// with the class registry and become the unit's current class; member
// nodes attach to their owner, the current class, or the orphan pool.
func (a *Aggregator) Ingest(src NodeSource) error {
	var current *Class
	for {
		n, ok := src.Next()
		if !ok {
			return nil
		}
		switch n := n.(type) {
		case *Class:
			current = a.AddClass(n)
		case *Member:
			if err := a.orphans.register(n, a.registry, current); err != nil {
				return err
			}
		}
	}
}

// AddClass registers a class declaration and drains any pooled members
// waiting for it. Returns the resident record.
func (a *Aggregator) AddClass(cls *Class) *Class {
	resident, created := a.registry.AddClass(cls)
	if created {
		log.Debugf("class %s registered (%s:%d)", cls.Name, cls.Filename, cls.Line)
		a.orphans.drainFor(resident)
	} else {
		log.Debugf("class %s merged (%s:%d)", cls.Name, cls.Filename, cls.Line)
	}
	return resident
}

// Finalize resolves all remaining orphans: members with a known owner
// get a placeholder class, ownerless members go to the global bucket.
// Afterwards the registry is closed for structural changes.
func (a *Aggregator) Finalize() {
	if a.finalized {
		return
	}
	a.orphans.resolveNamed(a.registry)
	a.orphans.resolveAnonymous(a.registry)
	a.finalized = true
	log.Debugf("finalized with %d classes", len(a.registry.Classes()))
}

// Classes returns the aggregated classes in first-sighting order.
func (a *Aggregator) Classes() []*Class {
	return a.registry.Classes()
}

// Orphans returns the members still waiting in the pool. Empty after
// Finalize; before it, useful for diagnostics.
func (a *Aggregator) Orphans() []*Member {
	return a.orphans.members
}

// Result returns the ordered class list concatenated with any
// unresolved orphans. After Finalize the orphan tail is always empty.
func (a *Aggregator) Result() []Node {
	result := make([]Node, 0, len(a.registry.Classes())+len(a.orphans.members))
	for _, cls := range a.registry.Classes() {
		result = append(result, cls)
	}
	for _, m := range a.orphans.members {
		result = append(result, m)
	}
	return result
}
