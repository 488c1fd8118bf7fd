//go:build linux

package rcapture

import (
	"encoding/binary"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// x11Backend implements the direct-framebuffer strategy: a connection to the
// X server is opened for the duration of a single call and closed on every
// exit path.
type x11Backend struct{}

func newPlatformBackend() (Backend, error) {
	return &x11Backend{}, nil
}

func (b *x11Backend) Dimensions() (Dimensions, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: %v", ErrNoDisplay, err)
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	return Dimensions{
		Width:  int(screen.WidthInPixels),
		Height: int(screen.HeightInPixels),
	}, nil
}

func (b *x11Backend) Grab(dims Dimensions) (*RawFrame, error) {
	if dims.Empty() {
		return emptyFrame(LayoutPackedMasked, dims), nil
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDisplay, err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)

	img, err := xproto.GetImage(conn, xproto.ImageFormatZPixmap,
		xproto.Drawable(screen.Root), 0, 0,
		uint16(dims.Width), uint16(dims.Height), 0xffffffff).Reply()
	if err != nil {
		return nil, fmt.Errorf("fetching root window image: %w", err)
	}

	visual := rootVisual(screen)
	if visual == nil {
		return nil, fmt.Errorf("%w: root visual %d not advertised",
			ErrUnsupportedConfiguration, screen.RootVisual)
	}
	bpp := pixmapBitsPerPixel(setup, img.Depth)
	if bpp == 0 {
		return nil, fmt.Errorf("%w: no pixmap format for depth %d",
			ErrUnsupportedConfiguration, img.Depth)
	}

	var order binary.ByteOrder = binary.LittleEndian
	if setup.ImageByteOrder == 1 { // MSBFirst
		order = binary.BigEndian
	}

	return &RawFrame{
		Layout:       LayoutPackedMasked,
		Dims:         dims,
		Stride:       len(img.Data) / dims.Height,
		Data:         img.Data,
		BitsPerPixel: bpp,
		Order:        order,
		RedMask:      visual.RedMask,
		GreenMask:    visual.GreenMask,
		BlueMask:     visual.BlueMask,
	}, nil
}

// rootVisual finds the visual the root window is using; its channel masks
// describe how pixels in the fetched image are packed.
func rootVisual(screen *xproto.ScreenInfo) *xproto.VisualInfo {
	for _, depth := range screen.AllowedDepths {
		for i := range depth.Visuals {
			if depth.Visuals[i].VisualId == screen.RootVisual {
				return &depth.Visuals[i]
			}
		}
	}
	return nil
}

// pixmapBitsPerPixel maps an image depth to the server's storage size for
// that depth. Depth 24 is normally stored as 32 bits per pixel.
func pixmapBitsPerPixel(setup *xproto.SetupInfo, depth byte) int {
	for _, format := range setup.PixmapFormats {
		if format.Depth == depth {
			return int(format.BitsPerPixel)
		}
	}
	return 0
}
