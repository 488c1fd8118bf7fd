package rcapture

import (
	"fmt"
	"sync"
)

// Service provides on-demand still frames of the primary display.
type Service interface {
	// CaptureNextFrame queries the display geometry, grabs one snapshot
	// and returns it in the canonical pixel layout. The frame count is
	// incremented only when the whole sequence succeeds.
	CaptureNextFrame() ([]byte, error)

	// FrameCount returns the number of captures completed so far.
	FrameCount() uint64

	// DisplayDimensions returns the current size of the primary display.
	DisplayDimensions() (Dimensions, error)
}

// Recorder implements Service on top of a platform Backend. Captures are
// serialized: the X11 backend opens a display connection per call and that
// is not assumed reentrant.
type Recorder struct {
	mu      sync.Mutex
	backend Backend
	counter *FrameCounter
}

// NewRecorder creates a Recorder with its own frame counter.
func NewRecorder(backend Backend) *Recorder {
	return &Recorder{
		backend: backend,
		counter: &FrameCounter{},
	}
}

// CaptureNextFrame captures and normalizes one frame. Geometry is queried
// fresh for every capture; a stale size must never be paired with a new grab.
func (r *Recorder) CaptureNextFrame() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dims, err := r.backend.Dimensions()
	if err != nil {
		return nil, fmt.Errorf("querying display dimensions: %w", err)
	}
	raw, err := r.backend.Grab(dims)
	if err != nil {
		return nil, fmt.Errorf("grabbing frame: %w", err)
	}
	frame, err := Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("normalizing frame: %w", err)
	}
	r.counter.Increment()
	return frame, nil
}

// FrameCount returns the number of completed captures.
func (r *Recorder) FrameCount() uint64 {
	return r.counter.Read()
}

// DisplayDimensions queries the primary display's current size.
func (r *Recorder) DisplayDimensions() (Dimensions, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.backend.Dimensions()
}
