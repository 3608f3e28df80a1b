// Package engine provides the core pipeline for layergen operations.
//
// The engine package acts as the orchestration layer between CLI commands and
// lower-level operations. It reads the layer directories, enumerates every
// combination of options and renders one composite per combination.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Layers: Lists layers and their option counts
//   - Plan: Enumerates combinations without rendering
//   - Generate: Renders and writes every composite
package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/danieljhkim/layergen/internal/clock"
	"github.com/danieljhkim/layergen/internal/config"
	"github.com/danieljhkim/layergen/internal/fsops"
	"github.com/danieljhkim/layergen/internal/hash"
	"github.com/danieljhkim/layergen/internal/layers"
	"github.com/danieljhkim/layergen/internal/permute"
)

// Engine orchestrates all layergen operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	hasher hash.Hasher
	clock  clock.Clock
	paths  config.Paths
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, hasher hash.Hasher, clk clock.Clock, paths config.Paths) *Engine {
	return &Engine{
		fs:     fs,
		hasher: hasher,
		clock:  clk,
		paths:  paths,
	}
}

// Paths returns the input and output roots the engine works on.
func (e *Engine) Paths() config.Paths {
	return e.paths
}

// resolve reads the ordered layers and the option list of each.
func (e *Engine) resolve() (*layers.Reader, []layers.Layer, [][]string, error) {
	if err := e.requireDir("layers root", e.paths.Layers); err != nil {
		return nil, nil, nil, err
	}

	reader := layers.NewReader(e.fs, e.paths.Layers)
	found, err := reader.ReadLayers()
	if err != nil {
		return nil, nil, nil, classify(err)
	}

	options, err := permute.Resolve(layers.DirNames(found), reader)
	if err != nil {
		return nil, nil, nil, classify(err)
	}

	return reader, found, options, nil
}

// requireDir checks that path is an existing directory.
func (e *Engine) requireDir(label, path string) error {
	if path == "" {
		return fmt.Errorf("%w: %s is not set", ErrValidation, label)
	}
	info, err := e.fs.Stat(path)
	if err != nil {
		return classify(fmt.Errorf("failed to stat %s %s: %w", label, path, err))
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s %s is not a directory", ErrValidation, label, path)
	}
	return nil
}

// classify tags filesystem not-exist errors with ErrNotFound so callers can
// match on the engine's sentinels alone.
func classify(err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}

func (e *Engine) sinceStart(start time.Time) time.Duration {
	return clock.Since(e.clock, start)
}
