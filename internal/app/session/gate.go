package session

import "sync/atomic"

// Gate is an explicit single-flight busy flag. Each action (transcribe,
// translate) holds its own gate so a second press while a call is outstanding
// is rejected instead of firing a concurrent request against a metered API.
type Gate struct {
	busy atomic.Bool
}

// TryAcquire claims the gate, returning false if a call is already in flight.
func (g *Gate) TryAcquire() bool {
	return g.busy.CompareAndSwap(false, true)
}

// Release frees the gate after the call resolves, success or failure.
func (g *Gate) Release() {
	g.busy.Store(false)
}

// Busy reports whether a call is in flight.
func (g *Gate) Busy() bool {
	return g.busy.Load()
}
