package engine

import (
	"context"

	"github.com/danieljhkim/layergen/internal/permute"
)

// Layers lists every layer in render order along with its options.
func (e *Engine) Layers(ctx context.Context, req *LayersRequest) (*LayersResult, error) {
	_, found, options, err := e.resolve()
	if err != nil {
		return nil, err
	}

	infos := make([]LayerInfo, len(found))
	for i, l := range found {
		infos[i] = LayerInfo{Layer: l, Options: options[i]}
	}

	return &LayersResult{
		Root:   e.paths.Layers,
		Layers: infos,
		Total:  permute.Count(options),
	}, nil
}
