package region

import (
	"image"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestTableGeometry(t *testing.T) {
	entries := Entries()
	if len(entries) != 11 {
		t.Fatalf("expected 11 entries, got %d:\n%s", len(entries), spew.Sdump(entries))
	}

	base := image.Rect(0, 0, BaseSize, BaseSize)
	for _, e := range entries {
		if !e.Src.Valid() || !e.Dst.Valid() {
			t.Errorf("%v: degenerate rectangle", e)
		}
		if e.Src.Dx() != e.Dst.Dx() || e.Src.Dy() != e.Dst.Dy() {
			t.Errorf("%v: source and destination sizes differ", e)
		}
		src := image.Rect(e.Src.X0, e.Src.Y0, e.Src.X1, e.Src.Y1)
		dst := image.Rect(e.Dst.X0, e.Dst.Y0, e.Dst.X1, e.Dst.Y1)
		if !src.In(image.Rect(0, 0, BaseSize, BaseSize/2)) {
			t.Errorf("%v: source outside single-layer area", e)
		}
		if !dst.In(base) || dst.Min.Y < BaseSize/2 {
			t.Errorf("%v: destination outside the added lower half", e)
		}
	}
}

func TestDestinationsDisjoint(t *testing.T) {
	entries := Entries()
	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i].Dst, entries[j].Dst
			ra := image.Rect(a.X0, a.Y0, a.X1, a.Y1)
			rb := image.Rect(b.X0, b.Y0, b.X1, b.Y1)
			if ra.Overlaps(rb) {
				t.Errorf("destinations overlap:\n%s", spew.Sdump(entries[i], entries[j]))
			}
		}
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(Arm, Outside)
	if !ok {
		t.Fatal("arm outside missing")
	}
	if want := (Rect{40, 20, 44, 32}); e.Rect(Right) != want {
		t.Errorf("arm outside source = %v, want %v", e.Src, want)
	}
	if want := (Rect{40, 52, 44, 64}); e.Rect(Left) != want {
		t.Errorf("arm outside destination = %v, want %v", e.Dst, want)
	}

	if _, ok := Lookup(Leg, Top); ok {
		t.Error("legs have no separate top face")
	}
	if _, ok := Lookup(Leg, TopFront); !ok {
		t.Error("leg top_front missing")
	}
}

func TestFaces(t *testing.T) {
	tests := []struct {
		limb Limb
		want []Face
	}{
		{Arm, []Face{Outside, Top, Front, Bottom, Inside, Back}},
		{Leg, []Face{TopFront, Bottom, Inside, Back, Outside}},
	}
	for _, tt := range tests {
		got := Faces(tt.limb)
		if len(got) != len(tt.want) {
			t.Fatalf("%v faces = %v, want %v", tt.limb, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%v face %d = %v, want %v", tt.limb, i, got[i], tt.want[i])
			}
		}
	}
}

func TestEntriesIsCopy(t *testing.T) {
	a := Entries()
	a[0].Src = Rect{}
	if b := Entries(); !b[0].Src.Valid() {
		t.Error("mutating Entries() result changed the table")
	}
}

func TestStrings(t *testing.T) {
	if s := TopFront.String(); s != "top_front" {
		t.Errorf("TopFront.String() = %q", s)
	}
	if s := Leg.String(); s != "leg" {
		t.Errorf("Leg.String() = %q", s)
	}
	if s := Left.String(); s != "left" {
		t.Errorf("Left.String() = %q", s)
	}
	if s := Face(42).String(); s != "face(42)" {
		t.Errorf("Face(42).String() = %q", s)
	}
}
