package rcapture

import "sync/atomic"

// FrameCounter counts completed captures for the life of the process.
// Increments and reads are atomic so concurrent capture calls never lose
// updates.
type FrameCounter struct {
	n uint64
}

// Increment records one completed capture.
func (c *FrameCounter) Increment() {
	atomic.AddUint64(&c.n, 1)
}

// Read returns the number of captures completed so far.
func (c *FrameCounter) Read() uint64 {
	return atomic.LoadUint64(&c.n)
}
