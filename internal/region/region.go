package region

import "fmt"

// BaseSize is the side of the reference atlas the canonical geometry is laid out on.
const BaseSize = 64

// Rect is a half-open rectangle in canonical (64x64 reference) coordinates.
// Scale it with a Ratio before using it against a real atlas.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Dx returns the canonical width.
func (r Rect) Dx() int { return r.X1 - r.X0 }

// Dy returns the canonical height.
func (r Rect) Dy() int { return r.Y1 - r.Y0 }

// Valid reports whether the rectangle has positive area.
func (r Rect) Valid() bool { return r.X1 > r.X0 && r.Y1 > r.Y0 }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X0, r.Y0, r.X1, r.Y1)
}

// Limb is a body part whose left half is synthesized from the right half.
type Limb int

const (
	Arm Limb = iota
	Leg
)

func (l Limb) String() string {
	switch l {
	case Arm:
		return "arm"
	case Leg:
		return "leg"
	default:
		return fmt.Sprintf("limb(%d)", int(l))
	}
}

// Side selects the right (source) or left (synthesized) limb.
type Side int

const (
	Right Side = iota
	Left
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Face is one sub-face of a limb box.
type Face int

const (
	Outside Face = iota
	Top
	Front
	Bottom
	Inside
	Back
	// TopFront is the combined top and front strip used by legs.
	TopFront
)

var faceNames = [...]string{
	Outside:  "outside",
	Top:      "top",
	Front:    "front",
	Bottom:   "bottom",
	Inside:   "inside",
	Back:     "back",
	TopFront: "top_front",
}

func (f Face) String() string {
	if f >= 0 && int(f) < len(faceNames) {
		return faceNames[f]
	}
	return fmt.Sprintf("face(%d)", int(f))
}

// Entry ties a right-limb source face to the left-limb face it is mirrored onto.
type Entry struct {
	Limb Limb
	Face Face
	Src  Rect // on the right limb
	Dst  Rect // on the left limb
}

// Rect returns the entry's rectangle for the given side.
func (e Entry) Rect(s Side) Rect {
	if s == Left {
		return e.Dst
	}
	return e.Src
}

func (e Entry) String() string {
	return fmt.Sprintf("%s/%s %v -> %v", e.Limb, e.Face, e.Src, e.Dst)
}

// table is never written after initialization.
var table = [...]Entry{
	{Arm, Outside, Rect{40, 20, 44, 32}, Rect{40, 52, 44, 64}},
	{Arm, Top, Rect{44, 16, 48, 20}, Rect{36, 48, 40, 52}},
	{Arm, Front, Rect{44, 20, 48, 32}, Rect{36, 52, 40, 64}},
	{Arm, Bottom, Rect{48, 16, 52, 20}, Rect{40, 48, 44, 52}},
	{Arm, Inside, Rect{48, 20, 52, 32}, Rect{32, 52, 36, 64}},
	{Arm, Back, Rect{52, 20, 56, 32}, Rect{44, 52, 48, 64}},

	{Leg, TopFront, Rect{4, 16, 8, 32}, Rect{20, 48, 24, 64}},
	{Leg, Bottom, Rect{8, 16, 12, 20}, Rect{24, 48, 28, 52}},
	{Leg, Inside, Rect{8, 20, 12, 32}, Rect{16, 52, 20, 64}},
	{Leg, Back, Rect{12, 20, 16, 32}, Rect{28, 52, 32, 64}},
	// At non-integer ratios the floored TopFront patch can reach one column
	// into the Outside destination; Outside is written last so it wins.
	{Leg, Outside, Rect{0, 20, 4, 32}, Rect{24, 52, 28, 64}},
}

// Entries returns a copy of the region table in application order.
func Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table[:])
	return out
}

// Len returns the number of table entries.
func Len() int { return len(table) }

// Lookup returns the entry for a limb face.
func Lookup(l Limb, f Face) (Entry, bool) {
	for _, e := range table {
		if e.Limb == l && e.Face == f {
			return e, true
		}
	}
	return Entry{}, false
}

// Faces lists the faces defined for a limb, in table order.
func Faces(l Limb) []Face {
	var faces []Face
	for _, e := range table {
		if e.Limb == l {
			faces = append(faces, e.Face)
		}
	}
	return faces
}
