package engine

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/layergen/internal/clock"
	"github.com/danieljhkim/layergen/internal/config"
	"github.com/danieljhkim/layergen/internal/fsops"
	"github.com/danieljhkim/layergen/internal/hash"
)

var (
	opaqueRed   = color.NRGBA{255, 0, 0, 255}
	opaqueBlue  = color.NRGBA{0, 0, 255, 255}
	transparent = color.NRGBA{}
)

// fixture is a layers root and an output root under one temp directory.
type fixture struct {
	t      *testing.T
	layers string
	out    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	f := &fixture{
		t:      t,
		layers: filepath.Join(root, "layers"),
		out:    filepath.Join(root, "out"),
	}
	for _, dir := range []string{f.layers, f.out} {
		if err := os.Mkdir(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}
	return f
}

// layer creates a layer directory; options may be added with asset.
func (f *fixture) layer(dirName string) {
	f.t.Helper()
	if err := os.MkdirAll(filepath.Join(f.layers, dirName), 0755); err != nil {
		f.t.Fatalf("failed to create layer %s: %v", dirName, err)
	}
}

// asset writes a 32x32 PNG into a layer.
func (f *fixture) asset(dirName, option string, fill func(x, y int) color.NRGBA) {
	f.t.Helper()
	f.layer(dirName)
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, fill(x, y))
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		f.t.Fatalf("failed to encode asset: %v", err)
	}
	f.raw(dirName, option, buf.Bytes())
}

// raw writes arbitrary bytes as an option file.
func (f *fixture) raw(dirName, option string, data []byte) {
	f.t.Helper()
	f.layer(dirName)
	if err := os.WriteFile(filepath.Join(f.layers, dirName, option), data, 0644); err != nil {
		f.t.Fatalf("failed to write asset: %v", err)
	}
}

func (f *fixture) paths() config.Paths {
	return config.Paths{Layers: f.layers, Out: f.out}
}

func (f *fixture) engine() *Engine {
	return f.engineWithFS(fsops.NewRealFS())
}

func (f *fixture) engineWithFS(fsys fsops.FS) *Engine {
	clk := clock.NewFakeClock(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	clk.Step = time.Millisecond
	return New(fsys, hash.NewSHA256Hasher(), clk, f.paths())
}

// outFiles lists the names in the output root.
func (f *fixture) outFiles() []string {
	f.t.Helper()
	entries, err := os.ReadDir(f.out)
	if err != nil {
		f.t.Fatalf("failed to read output: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// decodeOut decodes one output file.
func (f *fixture) decodeOut(name string) image.Image {
	f.t.Helper()
	data, err := os.ReadFile(filepath.Join(f.out, name))
	if err != nil {
		f.t.Fatalf("failed to read %s: %v", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		f.t.Fatalf("failed to decode %s: %v", name, err)
	}
	return img
}

func solid(c color.NRGBA) func(x, y int) color.NRGBA {
	return func(int, int) color.NRGBA { return c }
}

// topHalf fills the top half with c and leaves the rest transparent.
func topHalf(c color.NRGBA) func(x, y int) color.NRGBA {
	return func(x, y int) color.NRGBA {
		if y < 16 {
			return c
		}
		return transparent
	}
}

func rgbAt(img image.Image, x, y int) [3]uint32 {
	r, g, b, _ := img.At(x, y).RGBA()
	return [3]uint32{r >> 8, g >> 8, b >> 8}
}

// failingOpenFS reports the named option as missing when it is opened.
type failingOpenFS struct {
	fsops.RealFS
	missing string
	opened  []string
}

func (f *failingOpenFS) Open(path string) (io.ReadCloser, error) {
	f.opened = append(f.opened, filepath.Base(path))
	if filepath.Base(path) == f.missing {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return f.RealFS.Open(path)
}
