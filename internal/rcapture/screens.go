package rcapture

import (
	"image"

	"github.com/kbinani/screenshot"
)

// Screen describes one attached display.
type Screen struct {
	Index  int
	Bounds image.Rectangle
}

// Screens returns the displays currently attached to the machine.
func Screens() ([]Screen, error) {
	count := screenshot.NumActiveDisplays()
	screens := make([]Screen, count)
	for i := 0; i < count; i++ {
		screens[i] = Screen{
			Index:  i,
			Bounds: screenshot.GetDisplayBounds(i),
		}
	}
	return screens, nil
}
