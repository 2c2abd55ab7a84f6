package render

// Framebuffer is the offscreen classified buffer Pass A writes and
// Pixel Oracle / Pass B read: an RGBA8 color plane and a depth plane,
// row 0 at the bottom to match GPU bottom-origin conventions.
type Framebuffer struct {
	Width, Height int
	Color         []Pixel
	Depth         []float32
}

// NewFramebuffer allocates a cleared width x height buffer.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Color:  make([]Pixel, width*height),
		Depth:  make([]float32, width*height),
	}
	fb.Clear()
	return fb
}

// Clear resets color to OUTSIDE_COLOR_SPACE black and depth to the
// far plane, per the Field Renderer's clear policy (clear color
// (0,0,0,1) would map to idx=255 if alpha were literal sRGB alpha;
// here clear color means "nothing rendered here yet").
func (f *Framebuffer) Clear() {
	for i := range f.Color {
		f.Color[i] = Outside
		f.Depth[i] = 1e9
	}
}

func (f *Framebuffer) index(x, y int) (int, bool) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return 0, false
	}
	return y*f.Width + x, true
}

// At returns the pixel at (x, y) with y=0 at the bottom row. Out of
// bounds reads return the OUTSIDE_COLOR_SPACE sentinel.
func (f *Framebuffer) At(x, y int) Pixel {
	i, ok := f.index(x, y)
	if !ok {
		return Outside
	}
	return f.Color[i]
}

// DepthAt returns the stored depth at (x, y), or the far plane if out
// of bounds.
func (f *Framebuffer) DepthAt(x, y int) float32 {
	i, ok := f.index(x, y)
	if !ok {
		return 1e9
	}
	return f.Depth[i]
}

// Set writes a pixel unconditionally, bypassing any depth test.
func (f *Framebuffer) Set(x, y int, p Pixel, depth float32) {
	i, ok := f.index(x, y)
	if !ok {
		return
	}
	f.Color[i] = p
	f.Depth[i] = depth
}
