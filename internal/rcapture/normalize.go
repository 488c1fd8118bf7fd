package rcapture

import (
	"fmt"
	"math/bits"
)

// bgrStride returns the padded scanline width of a 24-bit bitmap row.
func bgrStride(width int) int {
	return (width*3 + 3) &^ 3
}

// Normalize converts a raw frame into the canonical pixel buffer: row-major,
// top-down, three bytes per pixel in R, G, B order.
//
// The one exception is LayoutBGR24Padded, which is returned as-is: B, G, R
// order with scanlines padded to 4-byte boundaries. Stripping the padding
// would change the byte contract hosts already compensate for, so the
// platform's native form is preserved.
func Normalize(raw *RawFrame) ([]byte, error) {
	if raw.Dims.Empty() {
		return []byte{}, nil
	}
	if err := checkGeometry(raw); err != nil {
		return nil, err
	}

	switch raw.Layout {
	case LayoutRGBX32:
		return repackRGBX(raw), nil
	case LayoutBGR24Padded:
		return raw.Data, nil
	case LayoutPackedMasked:
		return unpackMasked(raw)
	}
	return nil, fmt.Errorf("%w: unknown layout %d", ErrUnsupportedConfiguration, raw.Layout)
}

// checkGeometry verifies that the raw buffer really covers the claimed
// dimensions before any pixel loop touches it.
func checkGeometry(raw *RawFrame) error {
	w, h := raw.Dims.Width, raw.Dims.Height
	if len(raw.Data) != raw.Stride*h {
		return fmt.Errorf("%w: %d bytes for %dx%d with stride %d",
			ErrGeometryMismatch, len(raw.Data), w, h, raw.Stride)
	}

	var minStride int
	switch raw.Layout {
	case LayoutRGBX32:
		minStride = w * 4
	case LayoutBGR24Padded:
		minStride = bgrStride(w)
	case LayoutPackedMasked:
		minStride = w * raw.BitsPerPixel / 8
	}
	if raw.Stride < minStride {
		return fmt.Errorf("%w: stride %d below row width %d",
			ErrGeometryMismatch, raw.Stride, minStride)
	}
	return nil
}

// repackRGBX drops the padding byte of each 4-byte pixel. The input is
// already in R, G, B order so this is a fixed-stride copy.
func repackRGBX(raw *RawFrame) []byte {
	w, h := raw.Dims.Width, raw.Dims.Height
	out := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		row := raw.Data[y*raw.Stride:]
		dst := out[y*w*3:]
		for x := 0; x < w; x++ {
			copy(dst[x*3:x*3+3], row[x*4:x*4+3])
		}
	}
	return out
}

// unpackMasked extracts R, G and B from packed integer pixels using the
// frame's channel masks. The masks and shift amounts come from the screen
// configuration, not from constants: a 16-bit 565 display unpacks just as
// well as 32-bit truecolor.
func unpackMasked(raw *RawFrame) ([]byte, error) {
	if raw.RedMask == 0 || raw.GreenMask == 0 || raw.BlueMask == 0 {
		return nil, fmt.Errorf("%w: missing channel masks", ErrUnsupportedConfiguration)
	}
	if raw.Order == nil {
		return nil, fmt.Errorf("%w: missing byte order", ErrUnsupportedConfiguration)
	}

	var pixelAt func(row []byte, x int) uint32
	switch raw.BitsPerPixel {
	case 16:
		pixelAt = func(row []byte, x int) uint32 {
			return uint32(raw.Order.Uint16(row[x*2:]))
		}
	case 32:
		pixelAt = func(row []byte, x int) uint32 {
			return raw.Order.Uint32(row[x*4:])
		}
	default:
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedConfiguration, raw.BitsPerPixel)
	}

	w, h := raw.Dims.Width, raw.Dims.Height
	out := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		row := raw.Data[y*raw.Stride:]
		for x := 0; x < w; x++ {
			pix := pixelAt(row, x)
			i := (y*w + x) * 3
			out[i] = channel(pix, raw.RedMask)
			out[i+1] = channel(pix, raw.GreenMask)
			out[i+2] = channel(pix, raw.BlueMask)
		}
	}
	return out, nil
}

// channel extracts one color channel from a packed pixel and scales it to
// eight bits.
func channel(pix, mask uint32) uint8 {
	shift := bits.TrailingZeros32(mask)
	width := bits.OnesCount32(mask)
	v := (pix & mask) >> uint(shift)
	switch {
	case width < 8:
		// Replicate the high bits into the low ones so full intensity
		// maps to 0xff.
		v = v<<uint(8-width) | v>>uint(2*width-8)
	case width > 8:
		v >>= uint(width - 8)
	}
	return uint8(v)
}
