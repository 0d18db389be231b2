// Package regionmap renders diagnostic images of the limb regions copied by
// the single-to-double conversion.
package regionmap

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"mc-skin-converter/internal/region"
)

// Tints used for the two halves of every entry.
var (
	SourceTint      = color.NRGBA{R: 255, A: 110}
	DestinationTint = color.NRGBA{B: 255, A: 110}
)

// Render tints every source (red) and destination (blue) rectangle for an
// atlas of img's width, then upscales the result by scale with
// nearest-neighbour filtering. img may be a single-layer skin; the canvas is
// always square so destinations are visible.
func Render(img *image.NRGBA, scale int) (*image.NRGBA, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New("regionmap: empty image")
	}
	if scale < 1 {
		scale = 1
	}
	b := img.Bounds()
	w := b.Dx()

	canvas := imaging.New(w, w, color.NRGBA{})
	draw.Copy(canvas, image.Point{}, img, b, draw.Src, nil)

	src := image.NewUniform(SourceTint)
	dst := image.NewUniform(DestinationTint)
	for _, s := range region.ScaleAll(w) {
		draw.Draw(canvas, s.Src, src, image.Point{}, draw.Over)
		draw.Draw(canvas, s.Dst, dst, image.Point{}, draw.Over)
	}

	if scale == 1 {
		return canvas, nil
	}
	out := image.NewNRGBA(image.Rect(0, 0, w*scale, w*scale))
	draw.NearestNeighbor.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return out, nil
}

// Blank renders the region map on a transparent atlas of the given width.
func Blank(width, scale int) (*image.NRGBA, error) {
	if width <= 0 {
		return nil, errors.New("regionmap: width must be positive")
	}
	return Render(imaging.New(width, width, color.NRGBA{}), scale)
}
