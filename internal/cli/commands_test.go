package cli

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danieljhkim/layergen/internal/config"
)

// setupTestEnv creates a layers root with two layers and an empty output root.
func setupTestEnv(t *testing.T) (layers, out string) {
	t.Helper()
	root := t.TempDir()
	layers = filepath.Join(root, "layers")
	out = filepath.Join(root, "out")

	writeAsset(t, filepath.Join(layers, "0001bg", "a.png"), color.NRGBA{255, 0, 0, 255})
	writeAsset(t, filepath.Join(layers, "0001bg", "b.png"), color.NRGBA{0, 255, 0, 255})
	writeAsset(t, filepath.Join(layers, "0002fg", "x.png"), color.NRGBA{0, 0, 255, 128})
	if err := os.Mkdir(out, 0755); err != nil {
		t.Fatalf("failed to create output root: %v", err)
	}

	resetFlags()
	t.Cleanup(resetFlags)
	return layers, out
}

func writeAsset(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode asset: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create layer: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write asset: %v", err)
	}
}

// resetFlags restores every flag to its default; values and Changed persist between Execute calls.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, cmd := range []*cobra.Command{rootCmd, generateCmd, layersCmd, planCmd} {
		cmd.PersistentFlags().VisitAll(reset)
		cmd.Flags().VisitAll(reset)
	}
}

// captureStdout runs fn and returns what it wrote to os.Stdout.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String(), runErr
}

func TestGenerateCommand(t *testing.T) {
	layers, out := setupTestEnv(t)

	rootCmd.SetArgs([]string{"generate", "--layers", layers, "--out", out, "--manifest"})
	output, err := captureStdout(t, rootCmd.Execute)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !bytes.Contains([]byte(output), []byte("Generating 2 permutations of characters...")) {
		t.Errorf("expected permutation count line, got %q", output)
	}
	for _, name := range []string{"0.png", "1.png", "manifest.json"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestGenerateCommand_EnvOverride(t *testing.T) {
	layers, out := setupTestEnv(t)
	t.Setenv(config.EnvLayers, layers)
	t.Setenv(config.EnvOut, out)

	rootCmd.SetArgs([]string{"generate", "--format", "bmp"})
	if _, err := captureStdout(t, rootCmd.Execute); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(out, "1.bmp")); err != nil {
		t.Errorf("expected 1.bmp: %v", err)
	}
}

func TestGenerateCommand_JSONOutput(t *testing.T) {
	layers, out := setupTestEnv(t)

	rootCmd.SetArgs([]string{"generate", "--json", "--dry-run", "--layers", layers, "--out", out})
	output, err := captureStdout(t, rootCmd.Execute)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Total   int  `json:"total"`
		Written int  `json:"written"`
		DryRun  bool `json:"dryRun"`
	}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("expected valid JSON output, got error: %v, output: %q", err, output)
	}
	if result.Total != 2 || result.Written != 0 || !result.DryRun {
		t.Errorf("result = %+v", result)
	}
}

func TestGenerateCommand_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"--format", "gif"}},
		{"bad background", []string{"--background", "#nothex"}},
		{"bad size", []string{"--size", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layers, out := setupTestEnv(t)
			args := append([]string{"generate", "--layers", layers, "--out", out}, tt.args...)
			rootCmd.SetArgs(args)

			if _, err := captureStdout(t, rootCmd.Execute); err == nil {
				t.Error("expected error")
			}
			entries, _ := os.ReadDir(out)
			if len(entries) != 0 {
				t.Errorf("nothing should be written, found %d entries", len(entries))
			}
		})
	}
}

func TestGenerateCommand_MissingOutput(t *testing.T) {
	layers, out := setupTestEnv(t)
	missing := filepath.Join(out, "nope")

	rootCmd.SetArgs([]string{"generate", "--layers", layers, "--out", missing})
	if _, err := captureStdout(t, rootCmd.Execute); err == nil {
		t.Fatal("expected error for missing output root")
	}
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Errorf("output root should not be created, stat err = %v", err)
	}
}

func TestLayersCommand_JSONOutput(t *testing.T) {
	layers, _ := setupTestEnv(t)

	rootCmd.SetArgs([]string{"layers", "--json", "--layers", layers})
	output, err := captureStdout(t, rootCmd.Execute)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Layers []struct {
			Index   int      `json:"index"`
			Name    string   `json:"name"`
			Options []string `json:"options"`
		} `json:"layers"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("expected valid JSON output, got error: %v, output: %q", err, output)
	}
	if len(result.Layers) != 2 || result.Layers[0].Name != "bg" || len(result.Layers[0].Options) != 2 {
		t.Errorf("layers = %+v", result.Layers)
	}
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2", result.Total)
	}
}

func TestLayersCommand_Table(t *testing.T) {
	layers, _ := setupTestEnv(t)

	rootCmd.SetArgs([]string{"layers", "--layers", layers})
	output, err := captureStdout(t, rootCmd.Execute)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"INDEX", "0001bg", "0002fg"} {
		if !bytes.Contains([]byte(output), []byte(want)) {
			t.Errorf("expected output to contain %q, got %q", want, output)
		}
	}
}

func TestPlanCommand(t *testing.T) {
	layers, out := setupTestEnv(t)

	rootCmd.SetArgs([]string{"plan", "--layers", layers, "--limit", "1"})
	output, err := captureStdout(t, rootCmd.Execute)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !bytes.Contains([]byte(output), []byte("0.png")) {
		t.Errorf("expected plan to list 0.png, got %q", output)
	}
	if bytes.Contains([]byte(output), []byte("1.png")) {
		t.Errorf("limit should hide 1.png, got %q", output)
	}
	entries, _ := os.ReadDir(out)
	if len(entries) != 0 {
		t.Errorf("plan should not write output, found %d entries", len(entries))
	}
}
