package engine

import "github.com/danieljhkim/layergen/internal/config"

// LayersRequest represents a request to list layers.
type LayersRequest struct{}

// PlanRequest represents a request to enumerate combinations without rendering.
type PlanRequest struct {
	// Format decides the extension of the planned output filenames
	Format config.Format

	// Limit caps the number of combinations returned (0 means no limit)
	Limit int
}

// GenerateRequest represents a request to render every combination.
type GenerateRequest struct {
	// Render controls canvas size, background and output format
	Render config.RenderOptions

	// Manifest writes manifest.json into the output root after a successful run
	Manifest bool

	// DryRun counts combinations without writing anything
	DryRun bool

	// OnStart is called once with the total number of combinations before
	// any rendering starts
	OnStart func(total int)

	// OnRendered is called after each composite is written
	OnRendered func(done, total int)
}
