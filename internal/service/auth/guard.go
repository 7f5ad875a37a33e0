package auth

import "sync/atomic"

// OperationGuard keeps a flow from running twice at the same time.
// The zero value is ready to use.
type OperationGuard struct {
	busy atomic.Bool
}

// TryAcquire marks the operation as running.
// It reports false when another run is already in flight.
func (g *OperationGuard) TryAcquire() bool {
	return g.busy.CompareAndSwap(false, true)
}

// Release marks the operation as finished.
func (g *OperationGuard) Release() {
	g.busy.Store(false)
}

// Busy reports whether a run is currently in flight.
func (g *OperationGuard) Busy() bool {
	return g.busy.Load()
}
