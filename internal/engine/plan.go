package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/layergen/internal/config"
	"github.com/danieljhkim/layergen/internal/layers"
	"github.com/danieljhkim/layergen/internal/permute"
)

// OutputName returns the filename of the composite with the given ordinal.
func OutputName(index int, format config.Format) string {
	return fmt.Sprintf("%d.%s", index, format.Ext())
}

// Plan enumerates combinations in ordinal order without rendering anything.
func (e *Engine) Plan(ctx context.Context, req *PlanRequest) (*PlanResult, error) {
	format := req.Format
	if format == "" {
		format = config.FormatPNG
	}

	_, found, options, err := e.resolve()
	if err != nil {
		return nil, err
	}

	result := &PlanResult{
		Layers:  layers.DirNames(found),
		Total:   permute.Count(options),
		Entries: []PlanEntry{},
	}

	for i, p := range permute.All(options) {
		if req.Limit > 0 && i >= req.Limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, PlanEntry{
			Index:   i,
			File:    OutputName(i, format),
			Options: p,
		})
	}

	return result, nil
}
