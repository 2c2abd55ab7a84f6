// Package cferr holds the sentinel error values returned by value across
// the color-field core, per the error handling design: construction
// errors are local returns, never panics or exceptions for control flow.
package cferr

import "errors"

var (
	// ErrInvalidCoordinate means a color component was outside [0, 1]
	// when constructing an RgbColor, HsvColor or HslColor.
	ErrInvalidCoordinate = errors.New("cferr: coordinate component not in [0, 1]")

	// ErrAxisCountMismatch means the number of coordinates supplied did
	// not match a color space's axis count (always 3).
	ErrAxisCountMismatch = errors.New("cferr: coordinate count does not match color space axis count")

	// ErrAxisValueOutOfRange means an integer axis value supplied to a
	// slice fell outside [axis.Min, axis.Max]. RenderRequest.Validate
	// also returns it for a 2D slice whose lo != hi, for Polar on a space
	// with no polar axis, and for a highlight index outside the palette.
	ErrAxisValueOutOfRange = errors.New("cferr: axis value out of range")

	// ErrUnsupportedGPU means the GPU context could not be obtained or
	// lacks a required feature (depth-texture sampling, fence-sync).
	ErrUnsupportedGPU = errors.New("cferr: unsupported gpu context")

	// ErrShaderCompile carries a compile failure; the driver log is
	// wrapped, not discarded.
	ErrShaderCompile = errors.New("cferr: shader compile error")

	// ErrProgramLink carries a link failure; the driver log is wrapped.
	ErrProgramLink = errors.New("cferr: program link error")

	// ErrFramebufferIncomplete means a framebuffer completeness check
	// failed.
	ErrFramebufferIncomplete = errors.New("cferr: framebuffer incomplete")

	// ErrPaletteTooLarge means a palette exceeded MaxPaletteColors (200)
	// entries, a cap below the 254 that the two reserved indices allow.
	ErrPaletteTooLarge = errors.New("cferr: palette exceeds maximum size")
)
