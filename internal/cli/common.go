package cli

import (
	"encoding/json"
	"os"

	"github.com/danieljhkim/layergen/internal/clock"
	"github.com/danieljhkim/layergen/internal/config"
	"github.com/danieljhkim/layergen/internal/engine"
	"github.com/danieljhkim/layergen/internal/fsops"
	"github.com/danieljhkim/layergen/internal/hash"
)

// newEngine creates a new engine with real implementations of all dependencies.
// Flag values take precedence over environment overrides and defaults.
func newEngine() *engine.Engine {
	paths := config.DefaultPaths()
	paths.Override(layersDir, outDir)

	return engine.New(fsops.NewRealFS(), hash.NewSHA256Hasher(), &clock.RealClock{}, *paths)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
