package integration

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/danieljhkim/layergen/internal/clock"
	"github.com/danieljhkim/layergen/internal/config"
	"github.com/danieljhkim/layergen/internal/engine"
	"github.com/danieljhkim/layergen/internal/fsops"
	"github.com/danieljhkim/layergen/internal/hash"
)

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	files  map[string][]byte
	dirs   map[string]bool
	writes []string
}

func newTestFS() *testFS {
	return &testFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// mkdir records path and all of its parents as directories.
func (fs *testFS) mkdir(path string) {
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		fs.dirs[p] = true
		if parent := filepath.Dir(p); parent == p {
			return
		}
	}
}

func (fs *testFS) put(path string, data []byte) {
	fs.mkdir(filepath.Dir(path))
	fs.files[filepath.Clean(path)] = data
}

func notExist(op, path string) error {
	return &os.PathError{Op: op, Path: path, Err: os.ErrNotExist}
}

func (fs *testFS) Stat(path string) (os.FileInfo, error) {
	path = filepath.Clean(path)
	if fs.dirs[path] {
		return &mockFileInfo{name: filepath.Base(path), isDir: true, mode: os.ModeDir}, nil
	}
	if content, ok := fs.files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(content))}, nil
	}
	return nil, notExist("stat", path)
}

func (fs *testFS) ReadDir(path string) ([]os.DirEntry, error) {
	path = filepath.Clean(path)
	if !fs.dirs[path] {
		return nil, notExist("readdir", path)
	}

	seen := make(map[string]bool)
	var entries []os.DirEntry
	add := func(p string, isDir bool) {
		if filepath.Dir(p) != path || p == path || seen[p] {
			return
		}
		seen[p] = true
		entries = append(entries, mockDirEntry{&mockFileInfo{name: filepath.Base(p), isDir: isDir}})
	}
	for p := range fs.dirs {
		add(p, true)
	}
	for p := range fs.files {
		add(p, false)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (fs *testFS) Open(path string) (io.ReadCloser, error) {
	if content, ok := fs.files[filepath.Clean(path)]; ok {
		return io.NopCloser(bytes.NewReader(content)), nil
	}
	return nil, notExist("open", path)
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := fs.files[filepath.Clean(path)]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, notExist("open", path)
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	path = filepath.Clean(path)
	if !fs.dirs[filepath.Dir(path)] {
		return notExist("write", path)
	}
	fs.files[path] = append([]byte(nil), data...)
	fs.writes = append(fs.writes, filepath.Base(path))
	return nil
}

func (fs *testFS) ValidateIdentifier(id string) error {
	return fsops.ValidateIdentifier(id)
}

// filesIn returns the names of the files directly inside dir.
func (fs *testFS) filesIn(dir string) []string {
	var names []string
	for p := range fs.files {
		if filepath.Dir(p) == filepath.Clean(dir) {
			names = append(names, filepath.Base(p))
		}
	}
	sort.Strings(names)
	return names
}

// mockFileInfo implements os.FileInfo
type mockFileInfo struct {
	name  string
	size  int64
	mode  os.FileMode
	isDir bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// mockDirEntry implements os.DirEntry
type mockDirEntry struct {
	info *mockFileInfo
}

func (e mockDirEntry) Name() string { return e.info.name }
func (e mockDirEntry) IsDir() bool  { return e.info.isDir }
func (e mockDirEntry) Type() os.FileMode {
	if e.info.isDir {
		return os.ModeDir
	}
	return 0
}
func (e mockDirEntry) Info() (os.FileInfo, error) { return e.info, nil }

const (
	layersRoot = "/art/layers"
	outRoot    = "/art/out"
)

// setupTestEngine creates an engine over an in-memory filesystem with empty
// layers and output roots.
func setupTestEngine(t *testing.T) (*engine.Engine, *testFS, *clock.FakeClock) {
	t.Helper()

	fs := newTestFS()
	fs.mkdir(layersRoot)
	fs.mkdir(outRoot)

	clk := clock.NewFakeClock(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	eng := engine.New(fs, hash.NewSHA256Hasher(), clk, config.Paths{Layers: layersRoot, Out: outRoot})
	return eng, fs, clk
}

// addAsset stores a 32x32 PNG whose pixels come from fill.
func addAsset(t *testing.T, fs *testFS, layer, option string, fill func(x, y int) color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, fill(x, y))
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode asset: %v", err)
	}
	fs.put(filepath.Join(layersRoot, layer, option), buf.Bytes())
}

func solid(c color.NRGBA) func(x, y int) color.NRGBA {
	return func(int, int) color.NRGBA { return c }
}

// leftHalf fills columns x < 16 with c and leaves the rest transparent.
func leftHalf(c color.NRGBA) func(x, y int) color.NRGBA {
	return func(x, y int) color.NRGBA {
		if x < 16 {
			return c
		}
		return color.NRGBA{}
	}
}

// decodeOut decodes a composite held in the in-memory output root.
func decodeOut(t *testing.T, fs *testFS, name string) image.Image {
	t.Helper()
	data, ok := fs.files[filepath.Join(outRoot, name)]
	if !ok {
		t.Fatalf("%s was not written; output has %s", name, strings.Join(fs.filesIn(outRoot), ", "))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode %s: %v", name, err)
	}
	return img
}

func rgb(img image.Image, x, y int) [3]uint32 {
	r, g, b, _ := img.At(x, y).RGBA()
	return [3]uint32{r >> 8, g >> 8, b >> 8}
}
