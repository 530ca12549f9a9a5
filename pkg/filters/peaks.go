package filters

import (
	"fmt"

	"porenet/pkg/labeling"
	"porenet/pkg/voxel"
)

// FindPeaks returns the local maxima of a distance field computed over a
// shaped neighborhood: a voxel is a peak when its value equals the maximum
// of the field over the footprint centered on it and the voxel lies in the
// void phase (dt > 0).
//
// If footprint is nil a circular neighborhood of radius rMax is used for 2D
// images and a spherical one for 3D; other ranks then fail with
// ErrInvalidDimensionality. Before the maximum filter runs, solid voxels
// are lifted by a fixed penalty so a maximum plateau can never straddle the
// phase boundary: the lifted solid side wins the comparison there and is
// then struck out by the void mask.
func FindPeaks(dt *voxel.Float, rMax int, footprint Footprint) (*voxel.Bool, error) {
	if footprint == nil {
		switch dt.Dims.Rank() {
		case 2:
			footprint = Disk(rMax)
		case 3:
			footprint = Ball(rMax)
		default:
			return nil, fmt.Errorf("%w: rank %d and no footprint supplied", ErrInvalidDimensionality, dt.Dims.Rank())
		}
	}

	// Solid voxels carry dt == 0; lifting them by 2 guarantees the solid
	// side never satisfies the equality itself, and the void mask below
	// strips any match that would land there anyway.
	lifted := voxel.NewFloat(dt.Dims)
	for i, v := range dt.Data {
		if v > 0 {
			lifted.Data[i] = v
		} else {
			lifted.Data[i] = v + 2
		}
	}

	mx := maximumFilter(lifted, footprint)
	peaks := voxel.NewBool(dt.Dims)
	for i, v := range dt.Data {
		peaks.Data[i] = v > 0 && v == mx.Data[i]
	}
	return peaks, nil
}

// ReducePeaks collapses every connected peak cluster to the single voxel at
// its center of mass. Broad or elongated plateaus become one marker each;
// note that the center of an oddly shaped cluster (a horseshoe, say) may
// not lie on any of its original voxels.
func ReducePeaks(peaks *voxel.Bool) *voxel.Bool {
	labels, n := labeling.Label(peaks, voxel.Full)
	out := voxel.NewBool(peaks.Dims)
	for _, center := range labeling.CentersOfMass(labels, n) {
		out.Data[peaks.Dims.Index(center)] = true
	}
	return out
}
