package engine

import (
	"time"

	"github.com/danieljhkim/layergen/internal/layers"
)

// LayerInfo describes one layer and how many options it offers.
type LayerInfo struct {
	layers.Layer
	Options []string `json:"options"`
}

// LayersResult represents the result of listing layers.
type LayersResult struct {
	// Root is the layers root that was read
	Root string `json:"root"`

	// Layers are ordered by index
	Layers []LayerInfo `json:"layers"`

	// Total is the number of combinations the layers produce
	Total int `json:"total"`
}

// PlanEntry is one combination with its ordinal.
type PlanEntry struct {
	Index   int      `json:"index"`
	File    string   `json:"file"`
	Options []string `json:"options"`
}

// PlanResult represents the result of enumerating combinations.
type PlanResult struct {
	// Layers is the ordered list of layer directory names
	Layers []string `json:"layers"`

	// Total is the number of combinations, regardless of Limit
	Total int `json:"total"`

	// Entries holds up to Limit combinations in ordinal order
	Entries []PlanEntry `json:"entries"`
}

// GenerateResult represents the result of a generation run.
type GenerateResult struct {
	// Layers is the ordered list of layer directory names
	Layers []string `json:"layers"`

	// Total is the number of combinations
	Total int `json:"total"`

	// Written is the number of composites written
	Written int `json:"written"`

	// OutDir is where composites were written
	OutDir string `json:"outDir"`

	// ManifestPath is set when a manifest was written
	ManifestPath string `json:"manifestPath,omitempty"`

	// DryRun mirrors the request
	DryRun bool `json:"dryRun"`

	// Duration is how long the run took
	Duration time.Duration `json:"duration"`
}
