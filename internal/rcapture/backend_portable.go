//go:build !linux && !windows && !darwin

package rcapture

import (
	"fmt"

	"github.com/kbinani/screenshot"
)

// portableBackend covers the targets without a native code path by leaning
// on kbinani/screenshot, which returns RGBA images everywhere it works.
type portableBackend struct{}

func newPlatformBackend() (Backend, error) {
	return &portableBackend{}, nil
}

func (b *portableBackend) Dimensions() (Dimensions, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return Dimensions{}, fmt.Errorf("%w: no active displays", ErrNoDisplay)
	}
	bounds := screenshot.GetDisplayBounds(0)
	return Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

func (b *portableBackend) Grab(dims Dimensions) (*RawFrame, error) {
	if dims.Empty() {
		return emptyFrame(LayoutRGBX32, dims), nil
	}

	img, err := screenshot.Capture(0, 0, dims.Width, dims.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDisplay, err)
	}

	return &RawFrame{
		Layout: LayoutRGBX32,
		Dims:   dims,
		Stride: img.Stride,
		Data:   img.Pix,
	}, nil
}
