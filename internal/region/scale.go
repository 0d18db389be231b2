package region

import (
	"fmt"
	"image"
)

// Ratio is the HD ratio between an atlas and the 64px reference, kept exact as Num/Den.
type Ratio struct {
	Num, Den int
}

// RatioFor returns the HD ratio of an atlas of the given width.
func RatioFor(width int) Ratio {
	return Ratio{Num: width, Den: BaseSize}
}

// Float returns the ratio as a float, for reporting.
func (r Ratio) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// Integral reports whether the ratio is a whole number.
func (r Ratio) Integral() bool {
	return r.Den != 0 && r.Num%r.Den == 0
}

func (r Ratio) String() string {
	if r.Integral() {
		return fmt.Sprintf("%dx", r.Num/r.Den)
	}
	return fmt.Sprintf("%.3fx", r.Float())
}

// Scale maps a canonical rectangle onto the atlas. Every coordinate is truncated
// (floor of c*Num/Den), so rectangles sharing a canonical edge still share it after
// scaling.
func (r Ratio) Scale(c Rect) image.Rectangle {
	return image.Rect(r.scale(c.X0), r.scale(c.Y0), r.scale(c.X1), r.scale(c.Y1))
}

func (r Ratio) scale(v int) int {
	// Operands are non-negative, so integer division is floor.
	return v * r.Num / r.Den
}

// Scaled is a table entry with both rectangles mapped onto a concrete atlas.
type Scaled struct {
	Limb     Limb
	Face     Face
	Src, Dst image.Rectangle
}

// ScaleAll maps every table entry onto an atlas of the given width.
func ScaleAll(width int) []Scaled {
	r := RatioFor(width)
	out := make([]Scaled, len(table))
	for i, e := range table {
		out[i] = Scaled{Limb: e.Limb, Face: e.Face, Src: r.Scale(e.Src), Dst: r.Scale(e.Dst)}
	}
	return out
}
