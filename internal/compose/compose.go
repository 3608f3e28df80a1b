// Package compose draws layer assets onto a fixed-size canvas and encodes
// the result.
//
// Assets are decoded with any registered image decoder (PNG, JPEG, GIF, BMP,
// TIFF, WebP), anchored at the top-left corner and blended with the Over
// operator, so transparent regions let earlier layers show through. Assets
// larger than the canvas are clipped, never scaled.
package compose

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"

	"github.com/cenkalti/dominantcolor"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/danieljhkim/layergen/internal/config"
	"github.com/danieljhkim/layergen/internal/fsops"
)

// ErrDecode indicates an asset that could not be decoded as an image.
var ErrDecode = errors.New("failed to decode image")

// NewCanvas returns a size x size canvas filled with an opaque background.
func NewCanvas(size int, bg color.RGBA) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	bg.A = 0xff
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return canvas
}

// Overlay blends src onto dst with its top-left corner at (0,0).
func Overlay(dst draw.Image, src image.Image) {
	b := src.Bounds()
	draw.Draw(dst, b.Sub(b.Min), src, b.Min, draw.Over)
}

// Decode reads one asset image.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format config.Format) error {
	switch format {
	case config.FormatPNG:
		enc := png.Encoder{CompressionLevel: png.DefaultCompression}
		return enc.Encode(w, img)
	case config.FormatBMP:
		return bmp.Encode(w, img)
	case config.FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// DominantHex returns the dominant colour of img as "#rrggbb".
func DominantHex(img image.Image) string {
	return dominantcolor.Hex(dominantcolor.Find(img))
}

// Compositor builds composites from asset files read through an FS.
type Compositor struct {
	fs   fsops.FS
	opts config.RenderOptions
}

// NewCompositor creates a Compositor with the given render options.
func NewCompositor(fs fsops.FS, opts config.RenderOptions) *Compositor {
	return &Compositor{fs: fs, opts: opts}
}

// Options returns the render options in use.
func (c *Compositor) Options() config.RenderOptions {
	return c.opts
}

// Compose draws each asset in order onto a fresh canvas. Later assets sit on
// top of earlier ones.
func (c *Compositor) Compose(assetPaths []string) (*image.RGBA, error) {
	canvas := NewCanvas(c.opts.Size, c.opts.Background)
	for _, path := range assetPaths {
		img, err := c.load(path)
		if err != nil {
			return nil, err
		}
		Overlay(canvas, img)
	}
	return canvas, nil
}

// Render composes the assets and returns the encoded image bytes.
func (c *Compositor) Render(assetPaths []string) (*image.RGBA, []byte, error) {
	canvas, err := c.Compose(assetPaths)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, canvas, c.opts.Format); err != nil {
		return nil, nil, fmt.Errorf("failed to encode composite: %w", err)
	}
	return canvas, buf.Bytes(), nil
}

func (c *Compositor) load(path string) (image.Image, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("asset %s: %w", path, err)
	}
	return img, nil
}
