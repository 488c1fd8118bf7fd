package api

import (
	"image"
	"testing"

	"github.com/lmoreno/framegrab/internal/rcapture"
)

func TestFrameImage_RGB(t *testing.T) {
	dims := rcapture.Dimensions{Width: 2, Height: 1}
	frame := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}

	img, err := frameImage(frame, dims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Rect != image.Rect(0, 0, 2, 1) {
		t.Fatalf("unexpected bounds %v", img.Rect)
	}
	if img.Pix[0] != 0x11 || img.Pix[1] != 0x22 || img.Pix[2] != 0x33 || img.Pix[3] != 0xff {
		t.Errorf("pixel 0: got %v", img.Pix[:4])
	}
	if img.Pix[4] != 0x44 || img.Pix[5] != 0x55 || img.Pix[6] != 0x66 {
		t.Errorf("pixel 1: got %v", img.Pix[4:8])
	}
}

func TestFrameImage_PaddedBGR(t *testing.T) {
	// Width 2: 6 pixel bytes + 2 padding bytes per row, B G R order.
	dims := rcapture.Dimensions{Width: 2, Height: 1}
	frame := []byte{0x33, 0x22, 0x11, 0x66, 0x55, 0x44, 0, 0}

	img, err := frameImage(frame, dims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Pix[0] != 0x11 || img.Pix[1] != 0x22 || img.Pix[2] != 0x33 {
		t.Errorf("pixel 0: got %v, want RGB 11 22 33", img.Pix[:3])
	}
	if img.Pix[4] != 0x44 || img.Pix[5] != 0x55 || img.Pix[6] != 0x66 {
		t.Errorf("pixel 1: got %v, want RGB 44 55 66", img.Pix[4:7])
	}
}

func TestFrameImage_LengthMismatch(t *testing.T) {
	dims := rcapture.Dimensions{Width: 2, Height: 2}
	if _, err := frameImage(make([]byte, 5), dims); err == nil {
		t.Error("expected an error for a buffer that fits neither layout")
	}
}

func TestScaleImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))

	if got := scaleImage(src, 0); got != src {
		t.Error("zero width must keep the original image")
	}
	if got := scaleImage(src, 200); got != src {
		t.Error("upscaling is not a preview, original expected")
	}

	scaled := scaleImage(src, 10)
	if scaled.Bounds().Dx() != 10 || scaled.Bounds().Dy() != 5 {
		t.Errorf("got %v, want 10x5", scaled.Bounds())
	}
}
