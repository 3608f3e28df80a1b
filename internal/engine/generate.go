package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/layergen/internal/compose"
	"github.com/danieljhkim/layergen/internal/layers"
	"github.com/danieljhkim/layergen/internal/manifest"
	"github.com/danieljhkim/layergen/internal/permute"
)

// Generate renders one composite per combination into the output root.
//
// Combinations are produced lazily and rendered in ordinal order. The first
// failure aborts the run; composites already written are left in place and
// no manifest is written.
func (e *Engine) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	start := e.clock.Now()

	if err := req.Render.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !req.DryRun {
		if err := e.requireDir("output root", e.paths.Out); err != nil {
			return nil, err
		}
	}

	reader, found, options, err := e.resolve()
	if err != nil {
		return nil, err
	}
	dirNames := layers.DirNames(found)
	total := permute.Count(options)

	result := &GenerateResult{
		Layers: dirNames,
		Total:  total,
		OutDir: e.paths.Out,
		DryRun: req.DryRun,
	}

	if req.OnStart != nil {
		req.OnStart(total)
	}
	if req.DryRun {
		result.Duration = e.sinceStart(start)
		return result, nil
	}

	compositor := compose.NewCompositor(e.fs, req.Render)
	var m *manifest.Manifest
	if req.Manifest {
		m = manifest.New(dirNames, string(req.Render.Format), req.Render.Size)
	}

	for i, p := range permute.All(options) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		assets := make([]string, len(p))
		for j, option := range p {
			assets[j] = reader.AssetPath(dirNames[j], option)
		}

		canvas, data, err := compositor.Render(assets)
		if err != nil {
			return result, fmt.Errorf("combination %d: %w", i, classify(err))
		}

		name := OutputName(i, req.Render.Format)
		if err := e.fs.AtomicWrite(filepath.Join(e.paths.Out, name), data, 0644); err != nil {
			return result, fmt.Errorf("combination %d: failed to write %s: %w", i, name, err)
		}
		result.Written++

		if m != nil {
			m.Add(manifest.Entry{
				Index:    i,
				File:     name,
				Options:  p,
				Digest:   e.hasher.HashBytes(data),
				Dominant: compose.DominantHex(canvas),
			})
		}

		if req.OnRendered != nil {
			req.OnRendered(result.Written, total)
		}
	}

	if m != nil {
		m.GeneratedAt = e.clock.Now()
		store := manifest.NewStore(e.fs, e.paths.Out)
		if err := store.Save(m); err != nil {
			return result, err
		}
		result.ManifestPath = store.Path()
	}

	result.Duration = e.sinceStart(start)
	return result, nil
}
