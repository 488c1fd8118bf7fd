//go:build windows

package rcapture

import (
	"fmt"
	"unsafe"

	"github.com/lxn/win"
)

// gdiBackend implements the bitmap-copy strategy: blit the live screen into
// a 24-bit device-independent bitmap and read the bits back. The raw frame
// keeps GDI's native form, B, G, R bytes with 4-byte-aligned scanlines.
type gdiBackend struct{}

func newPlatformBackend() (Backend, error) {
	return &gdiBackend{}, nil
}

func (b *gdiBackend) Dimensions() (Dimensions, error) {
	return Dimensions{
		Width:  int(win.GetSystemMetrics(win.SM_CXSCREEN)),
		Height: int(win.GetSystemMetrics(win.SM_CYSCREEN)),
	}, nil
}

func (b *gdiBackend) Grab(dims Dimensions) (*RawFrame, error) {
	if dims.Empty() {
		return emptyFrame(LayoutBGR24Padded, dims), nil
	}

	screenDC := win.GetDC(0)
	if screenDC == 0 {
		return nil, fmt.Errorf("%w: GetDC failed", ErrNoDisplay)
	}
	defer win.ReleaseDC(0, screenDC)

	memDC := win.CreateCompatibleDC(screenDC)
	if memDC == 0 {
		return nil, fmt.Errorf("creating compatible DC: error %d", win.GetLastError())
	}
	defer win.DeleteDC(memDC)

	header := win.BITMAPINFOHEADER{
		BiWidth:       int32(dims.Width),
		BiHeight:      -int32(dims.Height), // negative height: top-down rows
		BiPlanes:      1,
		BiBitCount:    24,
		BiCompression: win.BI_RGB,
	}
	header.BiSize = uint32(unsafe.Sizeof(header))

	var bitsPtr unsafe.Pointer
	bitmap := win.CreateDIBSection(memDC, &header, win.DIB_RGB_COLORS, &bitsPtr, 0, 0)
	if bitmap == 0 || bitsPtr == nil {
		return nil, fmt.Errorf("creating DIB section: error %d", win.GetLastError())
	}
	defer win.DeleteObject(win.HGDIOBJ(bitmap))

	previous := win.SelectObject(memDC, win.HGDIOBJ(bitmap))
	if previous == 0 {
		return nil, fmt.Errorf("selecting bitmap: error %d", win.GetLastError())
	}
	defer win.SelectObject(memDC, previous)

	if !win.BitBlt(memDC, 0, 0, int32(dims.Width), int32(dims.Height),
		screenDC, 0, 0, win.SRCCOPY) {
		return nil, fmt.Errorf("blitting screen: error %d", win.GetLastError())
	}
	win.GdiFlush()

	stride := bgrStride(dims.Width)
	size := stride * dims.Height
	data := make([]byte, size)
	copy(data, unsafe.Slice((*byte)(bitsPtr), size))

	return &RawFrame{
		Layout: LayoutBGR24Padded,
		Dims:   dims,
		Stride: stride,
		Data:   data,
	}, nil
}
