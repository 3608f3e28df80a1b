package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Format is the raster encoding used for composite output files.
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

const (
	// DefaultSize is the edge length of the square canvas, in pixels.
	DefaultSize = 32

	// DefaultBackground is the canvas fill before any layer is drawn.
	DefaultBackground = "#000000"
)

// ParseFormat validates a format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatBMP, FormatTIFF:
		return f, nil
	case "tif":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want png, bmp or tiff)", s)
	}
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// RenderOptions controls how each composite is drawn and encoded.
type RenderOptions struct {
	// Size is the width and height of the canvas
	Size int

	// Background is the opaque colour the canvas starts with
	Background color.RGBA

	// Format selects the output encoder and file extension
	Format Format
}

// DefaultRenderOptions returns a 32x32 opaque black PNG canvas.
func DefaultRenderOptions() RenderOptions {
	bg, _ := ParseBackground(DefaultBackground)
	return RenderOptions{
		Size:       DefaultSize,
		Background: bg,
		Format:     FormatPNG,
	}
}

// ParseBackground parses a hex colour such as "#1a2b3c" into an opaque colour.
func ParseBackground(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid background colour %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Validate checks that the options describe a drawable canvas.
func (o RenderOptions) Validate() error {
	if o.Size <= 0 {
		return fmt.Errorf("canvas size must be positive, got %d", o.Size)
	}
	if _, err := ParseFormat(string(o.Format)); err != nil {
		return err
	}
	return nil
}
