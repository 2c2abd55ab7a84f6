package space

import "testing"

func TestAxisInvariant(t *testing.T) {
	if _, err := NewAxis("x", "X", "", 10, 5, 7); err == nil {
		t.Fatalf("expected error for min > max")
	}
	if _, err := NewAxis("x", "X", "", 0, 10, 20); err == nil {
		t.Fatalf("expected error for default > max")
	}
	if _, err := NewAxis("x", "X", "", 0, 10, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAvailablePolarAxis(t *testing.T) {
	hsv, _ := ByID("HSV")
	hue, _ := hsv.AxisByKey("h")
	sat, _ := hsv.AxisByKey("s")

	if _, ok := hsv.AvailablePolarAxis(hue); ok {
		t.Fatalf("expected no polar axis when current axis is the hue axis itself")
	}

	polar, ok := hsv.AvailablePolarAxis(sat)
	if !ok || polar.Key != "h" {
		t.Fatalf("expected hue as polar axis when current is saturation, got %+v, %v", polar, ok)
	}

	rgb, _ := ByID("RGB")
	red, _ := rgb.AxisByKey("r")
	if _, ok := rgb.AvailablePolarAxis(red); ok {
		t.Fatalf("RGB has no polar axis")
	}
}

func TestAxisIndex(t *testing.T) {
	hsl, _ := ByID("HSL")
	l, _ := hsl.AxisByKey("l")
	if idx := hsl.AxisIndex(l); idx != 2 {
		t.Fatalf("expected lightness at index 2, got %d", idx)
	}
}

func TestFormat(t *testing.T) {
	rgb, _ := ByID("RGB")
	got := Format(rgb, [3]float64{128.0 / 255, 0, 1})
	want := "RGB: 128 0 255"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	hsv, _ := ByID("HSV")
	got = Format(hsv, [3]float64{0.5, 1, 1})
	want = "HSV: 180° 100% 100%"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
