// Package filters implements the morphological filter stack of the SNOW
// partitioning algorithm: linear and Euclidean distance transforms, Gaussian
// smoothing, peak detection over shaped neighborhoods, saddle-point
// trimming, and nearby-peak merging.
//
// Every filter treats its inputs as read-only and returns freshly allocated
// grids; a peak set is only ever reduced as it moves through the trimming
// stages.
package filters

import "errors"

var (
	// ErrInvalidDimensionality is returned when an operation that needs a
	// 2- or 3-dimensional image receives another rank and no explicit
	// footprint was supplied to disambiguate the neighborhood shape.
	ErrInvalidDimensionality = errors.New("filters: image must be 2- or 3-dimensional")

	// ErrUnrecognizedMode is returned when a string mode option matches no
	// recognized variant.
	ErrUnrecognizedMode = errors.New("filters: unrecognized mode")
)
