// Package sdlcanvas implements orchestrator.Canvas over go-sdl2,
// grounded on the emulator's own background-texture blit idiom
// (cmd/internal/gui/renderer.go's DrawBackground, cmd/vnes/draw.go's
// drawRGBA): a single streaming texture, locked, copied into, unlocked,
// and presented every frame.
package sdlcanvas

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Window is a Canvas backed by an sdl.Window and a streaming texture
// sized to match it.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	width    int32
	height   int32
}

// New creates an SDL window of the given size titled title and a
// streaming texture of the same dimensions to blit rendered frames
// into. Call Destroy when done.
func New(title string, width, height int) (*Window, error) {
	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, fmt.Errorf("sdlcanvas: unable to create window: %s", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("sdlcanvas: unable to create renderer: %s", err)
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, fmt.Errorf("sdlcanvas: unable to create streaming texture: %s", err)
	}

	return &Window{
		window:   window,
		renderer: renderer,
		texture:  texture,
		width:    int32(width),
		height:   int32(height),
	}, nil
}

// Size implements orchestrator.Canvas.
func (w *Window) Size() (int, int) {
	return int(w.width), int(w.height)
}

// Present implements orchestrator.Canvas: it locks the streaming
// texture, copies the RGBA8 buffer in, unlocks, copies the texture into
// the renderer's back buffer, and flips it to the screen.
func (w *Window) Present(pixels []byte, width, height int) error {
	if int32(width) != w.width || int32(height) != w.height {
		return fmt.Errorf("sdlcanvas: frame size %dx%d does not match window size %dx%d", width, height, w.width, w.height)
	}

	dst, _, err := w.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("sdlcanvas: unable to lock texture: %s", err)
	}
	copy(dst, pixels)
	w.texture.Unlock()

	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("sdlcanvas: unable to copy texture: %s", err)
	}
	w.renderer.Present()
	return nil
}

// Destroy releases the window's SDL resources in reverse acquisition
// order.
func (w *Window) Destroy() error {
	if err := w.texture.Destroy(); err != nil {
		return err
	}
	if err := w.renderer.Destroy(); err != nil {
		return err
	}
	return w.window.Destroy()
}
