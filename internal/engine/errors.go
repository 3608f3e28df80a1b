package engine

import (
	"errors"

	"github.com/danieljhkim/layergen/internal/compose"
	"github.com/danieljhkim/layergen/internal/layers"
)

var (
	// ErrInvalidLayerName indicates a layer directory without a 4-digit index prefix.
	ErrInvalidLayerName = layers.ErrInvalidName

	// ErrDecode indicates an asset that is not a decodable image.
	ErrDecode = compose.ErrDecode

	// ErrNotFound indicates a missing root directory or asset file.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates invalid render options.
	ErrValidation = errors.New("validation failed")
)
