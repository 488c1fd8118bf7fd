package rcapture

import "encoding/binary"

// Dimensions holds the pixel size of a display.
type Dimensions struct {
	Width  int
	Height int
}

// Empty reports whether the display has no visible area.
func (d Dimensions) Empty() bool {
	return d.Width <= 0 || d.Height <= 0
}

// Layout identifies the native pixel arrangement of a RawFrame.
type Layout int

const (
	// LayoutRGBX32 is 4 bytes per pixel: R, G, B followed by a padding byte.
	LayoutRGBX32 Layout = iota
	// LayoutBGR24Padded is 3 bytes per pixel in B, G, R order with each
	// scanline padded to a 4-byte boundary.
	LayoutBGR24Padded
	// LayoutPackedMasked is one packed integer per pixel; channels are
	// located by the Red/Green/BlueMask fields.
	LayoutPackedMasked
)

// RawFrame is one unprocessed snapshot of the screen in whatever layout the
// platform API produced. It only exists between a grab and its normalization.
type RawFrame struct {
	Layout Layout
	Dims   Dimensions
	Stride int
	Data   []byte

	// Set for LayoutPackedMasked only.
	BitsPerPixel int
	Order        binary.ByteOrder
	RedMask      uint32
	GreenMask    uint32
	BlueMask     uint32
}

// Backend grabs raw frames through one platform graphics API.
type Backend interface {
	// Dimensions queries the primary display's current pixel size. The
	// result is never cached; the display can change modes between calls.
	Dimensions() (Dimensions, error)

	// Grab takes one snapshot of the screen at the given size. It blocks
	// until the OS call completes and returns the frame in the backend's
	// native layout.
	Grab(dims Dimensions) (*RawFrame, error)
}

// NewBackend returns the capture backend for the build target.
func NewBackend() (Backend, error) {
	return newPlatformBackend()
}

// emptyFrame is what a backend returns for a zero-area display: no data,
// nothing to allocate, normalizes to a zero-length buffer.
func emptyFrame(layout Layout, dims Dimensions) *RawFrame {
	return &RawFrame{Layout: layout, Dims: dims}
}
