package regionmap

import (
	"image"
	"image/color"
	"testing"
)

func TestBlank(t *testing.T) {
	img, err := Blank(64, 4)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
		t.Fatalf("bounds = %v, want 256x256", b)
	}

	tests := []struct {
		name string
		x, y int
		want string
	}{
		{"arm outside source", 41, 21, "red"},
		{"arm outside destination", 41, 53, "blue"},
		{"leg inside destination", 17, 53, "blue"},
		{"head", 10, 10, "clear"},
	}
	for _, tt := range tests {
		c := img.NRGBAAt(tt.x*4+1, tt.y*4+1)
		var got string
		switch {
		case c.A == 0:
			got = "clear"
		case c.R > c.B:
			got = "red"
		default:
			got = "blue"
		}
		if got != tt.want {
			t.Errorf("%s: pixel %v is %s, want %s", tt.name, c, got, tt.want)
		}
	}
}

func TestRenderSingleLayerIsSquare(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 32))
	src.SetNRGBA(0, 0, color.NRGBA{G: 200, A: 255})

	img, err := Render(src, 1)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds = %v, want 64x64", b)
	}
	if c := img.NRGBAAt(0, 0); c != (color.NRGBA{G: 200, A: 255}) {
		t.Errorf("base pixel = %v", c)
	}
	if c := src.NRGBAAt(41, 21); c.A != 0 {
		t.Errorf("input mutated: %v", c)
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(nil, 1); err == nil {
		t.Error("nil image rendered")
	}
	if _, err := Blank(0, 1); err == nil {
		t.Error("zero width rendered")
	}
	img, err := Blank(32, 0)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 32 {
		t.Errorf("scale 0 not treated as 1: %v", img.Bounds())
	}
}
