package metrics

import "sync/atomic"

// Counters tracks backend call outcomes for one dashboard controller.
type Counters struct {
	fetchOK       atomic.Int64
	fetchFailed   atomic.Int64
	refreshOK     atomic.Int64
	refreshFailed atomic.Int64
}

// Snapshot is a point-in-time copy of Counters.
type Snapshot struct {
	FetchSucceeded   int64 `json:"fetchSucceeded"`
	FetchFailed      int64 `json:"fetchFailed"`
	RefreshSucceeded int64 `json:"refreshSucceeded"`
	RefreshFailed    int64 `json:"refreshFailed"`
}

// NewCounters returns zeroed counters.
func NewCounters() *Counters {
	return &Counters{}
}

// FetchSucceeded records a fetch that returned insights.
func (c *Counters) FetchSucceeded() { c.fetchOK.Add(1) }

// FetchFailed records a fetch that ended in a backend error.
func (c *Counters) FetchFailed() { c.fetchFailed.Add(1) }

// RefreshSucceeded records an accepted ETL run.
func (c *Counters) RefreshSucceeded() { c.refreshOK.Add(1) }

// RefreshFailed records an ETL run the backend rejected or never received.
func (c *Counters) RefreshFailed() { c.refreshFailed.Add(1) }

// Snapshot reads all counters.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		FetchSucceeded:   c.fetchOK.Load(),
		FetchFailed:      c.fetchFailed.Load(),
		RefreshSucceeded: c.refreshOK.Load(),
		RefreshFailed:    c.refreshFailed.Load(),
	}
}

// IsZero reports whether nothing has been recorded yet.
func (s Snapshot) IsZero() bool {
	return s == Snapshot{}
}
