// Package skin converts legacy single-layer skin atlases (width = 2*height) into the
// square double-layer layout by mirroring the right arm and leg onto the left ones.
//
// Atlases are *image.NRGBA with straight alpha. The conversion is pure: it never
// mutates its input and keeps no state between calls, so it is safe to run
// concurrently on different atlases.
package skin

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"mc-skin-converter/internal/region"
)

// Convert returns a new w×w double-layer atlas built from the single-layer atlas src.
//
// The top w×h of the result is a byte-for-byte copy of src. Every region table face
// is then cropped from the right limb, mirrored horizontally and written over the
// left limb destination, replacing whatever was there.
func Convert(src *image.NRGBA) (*image.NRGBA, error) {
	if src == nil {
		return nil, &LayoutError{}
	}
	if err := Validate(src); err != nil {
		return nil, err
	}

	b := src.Bounds()
	w := b.Dx()

	// NRGBA to NRGBA with draw.Src is a plain byte copy, so alpha is preserved exactly.
	dst := imaging.New(w, w, color.NRGBA{})
	draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)

	for _, s := range region.ScaleAll(w) {
		// Crop copies, so flipping never touches src.
		patch := imaging.FlipH(imaging.Crop(src, s.Src.Add(b.Min)))
		draw.Copy(dst, s.Dst.Min, patch, patch.Bounds(), draw.Src, nil)
	}
	return dst, nil
}
