// Package snow partitions the void space of a binary porous-material image
// into pore regions using a marker-based watershed with specially filtered
// peaks as markers (the SNOW algorithm: Sub-Network of an Over-segmented
// Watershed).
//
// The pipeline is strictly linear: distance transform, optional Gaussian
// smoothing, peak detection, saddle-point trimming, nearby-peak merging,
// connected-component labeling of the survivors, watershed flooding, and
// optional color randomization. Each stage consumes the previous stage's
// output and returns fresh arrays; the caller's image is never mutated.
package snow

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"

	"porenet/pkg/filters"
	"porenet/pkg/labeling"
	"porenet/pkg/voxel"
	"porenet/pkg/watershed"
)

// Options configures a partitioning run. Start from DefaultOptions; the
// zero value disables masking and randomization, which is rarely wanted.
type Options struct {
	// DT is an optional precomputed distance transform of the void phase.
	// When non-nil it must match the image's dimensions and the transform
	// stage is skipped.
	DT *voxel.Float

	// RMax is the radius of the neighborhood used by peak detection.
	RMax int

	// Sigma is the standard deviation of the Gaussian blur applied to the
	// distance field before peak detection. Zero disables smoothing, which
	// is useful when a pre-filtered field is supplied through DT.
	Sigma float64

	// Mask confines watershed flooding to the void phase, leaving solid
	// voxels at label 0.
	Mask bool

	// Randomize remaps the final region labels through a random
	// permutation so neighboring regions render in distinct colors.
	Randomize bool

	// Seed seeds the label permutation when Randomize is set. Zero draws a
	// seed from the clock.
	Seed int64

	// MaxIters bounds the dilation loop of saddle-point trimming.
	MaxIters int

	// Logger receives stage progress and diagnostics. Defaults to a
	// disabled logger, so the library is silent unless a sink is injected.
	Logger zerolog.Logger
}

// DefaultOptions returns the standard SNOW parameters.
func DefaultOptions() *Options {
	return &Options{
		RMax:      4,
		Sigma:     0.4,
		Mask:      true,
		Randomize: true,
		MaxIters:  500,
		Logger:    zerolog.Nop(),
	}
}

// Results bundles everything the pipeline produced. All grids share the
// input image's dimensions.
type Results struct {
	// Im is the boolean void-phase image the pipeline ran on.
	Im *voxel.Bool

	// DT is the unsmoothed distance transform of the void phase.
	DT *voxel.Float

	// Peaks is the labeled marker image: each surviving peak cluster
	// carries one positive label.
	Peaks *voxel.Int

	// Regions is the partitioned image: one positive label per pore
	// region, 0 for solid or unreached voxels.
	Regions *voxel.Int
}

// Partition runs the full SNOW pipeline on a void-phase mask and returns
// the complete result bundle. Fatal errors (mismatched precomputed
// transform, unsupported rank) surface immediately with no partial results.
func Partition(im *voxel.Bool, opts *Options) (*Results, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	log := opts.Logger

	log.Info().Ints("dims", []int(im.Dims)).Msg("beginning SNOW partitioning")
	im = im.Clone()

	var dt *voxel.Float
	if opts.DT != nil {
		if !opts.DT.Dims.Equal(im.Dims) {
			return nil, fmt.Errorf("%w: image %v vs supplied dt %v", voxel.ErrShapeMismatch, im.Dims, opts.DT.Dims)
		}
		dt = opts.DT.Clone()
	} else {
		log.Info().Msg("performing distance transform")
		dt = filters.EDT(im)
	}

	res := &Results{Im: im, DT: dt}

	work := dt
	if opts.Sigma > 0 {
		log.Info().Float64("sigma", opts.Sigma).Msg("applying Gaussian blur")
		work = filters.GaussianBlur(dt, opts.Sigma)
	}

	peaks, err := filters.FindPeaks(work, opts.RMax, nil)
	if err != nil {
		return nil, err
	}
	log.Info().Int("peaks", countClusters(peaks)).Msg("initial peaks found")

	peaks, err = filters.TrimSaddlePoints(peaks, work, opts.MaxIters, log)
	if err != nil {
		return nil, err
	}
	log.Info().Int("peaks", countClusters(peaks)).Msg("peaks after trimming saddle points")

	peaks, err = filters.TrimNearbyPeaks(peaks, work)
	if err != nil {
		return nil, err
	}

	markers, n := labeling.Label(peaks, voxel.Full)
	log.Info().Int("peaks", n).Msg("peaks after trimming nearby peaks")
	res.Peaks = markers

	// Watershed floods lowest-first, so negating the field turns distance
	// maxima into basin floors.
	negated := voxel.NewFloat(work.Dims)
	copy(negated.Data, work.Data)
	floats.Scale(-1, negated.Data)
	var mask *voxel.Bool
	if opts.Mask {
		mask = im
	}
	regions, err := watershed.Segment(negated, markers, mask)
	if err != nil {
		return nil, err
	}

	if opts.Randomize {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		regions = labeling.RandomizeColors(regions, rand.New(rand.NewSource(seed)))
	}
	res.Regions = regions

	log.Info().Int("regions", n).Msg("partitioning complete")
	return res, nil
}

// PartitionRegions runs the pipeline and returns only the region label
// image.
func PartitionRegions(im *voxel.Bool, opts *Options) (*voxel.Int, error) {
	res, err := Partition(im, opts)
	if err != nil {
		return nil, err
	}
	return res.Regions, nil
}

// countClusters reports the number of connected peak clusters, for progress
// reporting between trimming stages.
func countClusters(peaks *voxel.Bool) int {
	_, n := labeling.Label(peaks, voxel.Full)
	return n
}
