package api

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"

	"github.com/lmoreno/framegrab/internal/rcapture"
)

// frameImage converts a normalized frame buffer into an image. The canonical
// buffer is RGB24; the Windows backend instead produces padded BGR rows, so
// the buffer length decides which decode applies.
func frameImage(frame []byte, dims rcapture.Dimensions) (*image.RGBA, error) {
	w, h := dims.Width, dims.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	switch {
	case len(frame) == w*h*3:
		for i := 0; i < w*h; i++ {
			src := i * 3
			dst := i * 4
			img.Pix[dst] = frame[src]
			img.Pix[dst+1] = frame[src+1]
			img.Pix[dst+2] = frame[src+2]
			img.Pix[dst+3] = 0xff
		}
	case len(frame) == paddedBGRStride(w)*h:
		stride := paddedBGRStride(w)
		for y := 0; y < h; y++ {
			row := frame[y*stride:]
			for x := 0; x < w; x++ {
				src := x * 3
				dst := y*img.Stride + x*4
				img.Pix[dst] = row[src+2]
				img.Pix[dst+1] = row[src+1]
				img.Pix[dst+2] = row[src]
				img.Pix[dst+3] = 0xff
			}
		}
	default:
		return nil, fmt.Errorf("frame of %d bytes does not fit a %dx%d display", len(frame), w, h)
	}
	return img, nil
}

func paddedBGRStride(width int) int {
	return (width*3 + 3) &^ 3
}

// scaleImage downscales a frame for preview delivery. Zero width keeps the
// original size.
func scaleImage(src *image.RGBA, width int) image.Image {
	if width <= 0 || width >= src.Rect.Dx() {
		return src
	}
	return resize.Resize(uint(width), 0, src, resize.Lanczos3)
}
