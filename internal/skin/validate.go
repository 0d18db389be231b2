package skin

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidLayout matches any *LayoutError via errors.Is.
var ErrInvalidLayout = errors.New("invalid skin layout")

// LayoutError reports an atlas that is not a single-layer skin.
type LayoutError struct {
	Width, Height int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("skin: not a single-layer skin: width must be twice the height, got %dx%d",
		e.Width, e.Height)
}

func (e *LayoutError) Is(target error) bool { return target == ErrInvalidLayout }

// Kind classifies an atlas by its aspect ratio.
type Kind int

const (
	Unknown Kind = iota
	SingleLayer
	DoubleLayer
)

func (k Kind) String() string {
	switch k {
	case SingleLayer:
		return "single-layer"
	case DoubleLayer:
		return "double-layer"
	default:
		return "unknown"
	}
}

// Layout classifies img. Empty images are Unknown.
func Layout(img image.Image) Kind {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	switch {
	case w == 0 || h == 0:
		return Unknown
	case w == 2*h:
		return SingleLayer
	case w == h:
		return DoubleLayer
	default:
		return Unknown
	}
}

// Validate checks that img is a non-empty single-layer atlas (width == 2*height).
func Validate(img image.Image) error {
	if Layout(img) != SingleLayer {
		b := img.Bounds()
		return &LayoutError{Width: b.Dx(), Height: b.Dy()}
	}
	return nil
}
