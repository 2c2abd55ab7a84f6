package oracle

import (
	"testing"

	"github.com/flga/colorfield/palette"
	"github.com/flga/colorfield/render"
)

func TestColorAtOutOfBounds(t *testing.T) {
	fb := render.NewFramebuffer(4, 4)
	if rgb, nc := ColorAt(fb, nil, -1, 0); rgb != nil || nc != nil {
		t.Fatalf("expected (nil, nil) out of bounds, got (%v, %v)", rgb, nc)
	}
	if rgb, nc := ColorAt(fb, nil, 4, 0); rgb != nil || nc != nil {
		t.Fatalf("expected (nil, nil) out of bounds, got (%v, %v)", rgb, nc)
	}
}

func TestColorAtOutsideColorSpace(t *testing.T) {
	fb := render.NewFramebuffer(4, 4) // cleared to OUTSIDE_COLOR_SPACE
	rgb, nc := ColorAt(fb, nil, 0, 0)
	if rgb != nil || nc != nil {
		t.Fatalf("expected (nil, nil) for untouched fragment, got (%v, %v)", rgb, nc)
	}
}

func TestColorAtDecodesRgbAndPaletteIndex(t *testing.T) {
	fb := render.NewFramebuffer(4, 4)
	fb.Set(1, 2, render.Pixel{R: 255, G: 0, B: 0, A: 0}, 0)

	pal := palette.Palette{{Name: "Red"}}
	// canvas y is top-origin; flip = height-1-y = 3-y must equal 2 -> y=1
	rgb, nc := ColorAt(fb, pal, 1, 1)
	if rgb == nil || nc == nil {
		t.Fatalf("expected a decoded color and palette entry")
	}
	if rgb.R != 1 || rgb.G != 0 || rgb.B != 0 {
		t.Errorf("got rgb %+v, want pure red", rgb)
	}
	if nc.Name != "Red" {
		t.Errorf("got palette entry %+v, want Red", nc)
	}
}

func TestColorAtIndexBeyondPaletteLength(t *testing.T) {
	fb := render.NewFramebuffer(4, 4)
	fb.Set(0, 0, render.Pixel{R: 0, G: 0, B: 0, A: 254}, 0)
	rgb, nc := ColorAt(fb, nil, 0, 3)
	if rgb == nil {
		t.Fatalf("expected a decoded color even with no palette")
	}
	if nc != nil {
		t.Errorf("expected no palette entry, got %+v", nc)
	}
}
