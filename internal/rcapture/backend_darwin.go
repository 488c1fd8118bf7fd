//go:build darwin

package rcapture

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <stdlib.h>

typedef struct {
	void   *data;
	size_t  size;
	int     ok;
} grabResult;

// grabMainDisplay asks the window server for a copy of the main display and
// draws it into an RGBX bitmap sized to the requested dimensions.
static grabResult grabMainDisplay(int width, int height) {
	grabResult out = {0};

	CGImageRef image = CGDisplayCreateImage(CGMainDisplayID());
	if (!image) {
		return out;
	}

	size_t stride = (size_t)width * 4;
	out.size = stride * (size_t)height;
	out.data = malloc(out.size);
	if (!out.data) {
		CGImageRelease(image);
		out.size = 0;
		return out;
	}

	CGColorSpaceRef space = CGColorSpaceCreateDeviceRGB();
	CGContextRef ctx = CGBitmapContextCreate(out.data, width, height, 8,
		stride, space, kCGImageAlphaNoneSkipLast);
	if (!ctx) {
		free(out.data);
		out.data = NULL;
		out.size = 0;
	} else {
		CGContextDrawImage(ctx, CGRectMake(0, 0, width, height), image);
		CGContextRelease(ctx);
		out.ok = 1;
	}
	CGColorSpaceRelease(space);
	CGImageRelease(image);
	return out;
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// cgBackend implements the compositor-image strategy through CoreGraphics:
// the window server hands back a finished image of the display, the backend
// copies its pixels out as RGBX.
type cgBackend struct{}

func newPlatformBackend() (Backend, error) {
	return &cgBackend{}, nil
}

func (b *cgBackend) Dimensions() (Dimensions, error) {
	bounds := C.CGDisplayBounds(C.CGMainDisplayID())
	return Dimensions{
		Width:  int(bounds.size.width),
		Height: int(bounds.size.height),
	}, nil
}

func (b *cgBackend) Grab(dims Dimensions) (*RawFrame, error) {
	if dims.Empty() {
		return emptyFrame(LayoutRGBX32, dims), nil
	}

	result := C.grabMainDisplay(C.int(dims.Width), C.int(dims.Height))
	if result.ok == 0 {
		if result.data != nil {
			C.free(result.data)
		}
		return nil, fmt.Errorf("%w: CGDisplayCreateImage returned nothing", ErrNoDisplay)
	}
	defer C.free(result.data)

	data := make([]byte, int(result.size))
	copy(data, unsafe.Slice((*byte)(result.data), int(result.size)))

	return &RawFrame{
		Layout: LayoutRGBX32,
		Dims:   dims,
		Stride: dims.Width * 4,
		Data:   data,
	}, nil
}
