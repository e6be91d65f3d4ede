package host

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/kbinani/screenshot"
)

// Screen captures every active display into a single PNG.
type Screen struct {
	displays func() int
	bounds   func(i int) image.Rectangle
	capture  func(r image.Rectangle) (*image.RGBA, error)
}

func NewScreen() *Screen {
	return &Screen{
		displays: screenshot.NumActiveDisplays,
		bounds:   screenshot.GetDisplayBounds,
		capture:  screenshot.CaptureRect,
	}
}

// Available reports whether at least one display can be captured.
func (s *Screen) Available() (ok bool) {
	// The X11 backend panics when no display server is reachable.
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return s.displays() > 0
}

// Capture writes the union of all display bounds to path.
func (s *Screen) Capture(path string) error {
	n := s.displays()
	if n <= 0 {
		return ErrUnavailable
	}

	var area image.Rectangle
	for i := 0; i < n; i++ {
		area = area.Union(s.bounds(i))
	}

	img, err := s.capture(area)
	if err != nil {
		return fmt.Errorf("failed to capture screen: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
