package reactive

import "sync/atomic"

var idCounter uint64

// nextID hands out a process-wide unique identifier for cells and owners,
// used for diagnostics and metrics labels rather than for equality —
// pointer identity is what the graph actually compares.
func nextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}
