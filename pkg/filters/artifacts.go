package filters

import (
	"math"

	"porenet/pkg/voxel"
)

// FindDTArtifacts bounds the error a distance field may carry near the
// image border. A voxel whose distance value exceeds its distance to the
// nearest image face could be wrong: solid lurking just beyond the trimmed
// border would have produced a smaller value. The result holds that excess
// per voxel (distance value minus distance to the nearest face, floored at
// zero); voxels at zero are trustworthy.
func FindDTArtifacts(dt *voxel.Float) *voxel.Float {
	border := voxel.NewFloat(dt.Dims)
	for i := range border.Data {
		border.Data[i] = math.Inf(1)
	}

	all := voxel.NewBool(dt.Dims)
	for i := range all.Data {
		all.Data[i] = true
	}
	for axis := 0; axis < dt.Dims.Rank(); axis++ {
		lin, err := LinearDistanceTransform(all, axis, ModeBoth)
		if err != nil {
			// All-true input with a valid axis cannot fail.
			panic(err)
		}
		for i, v := range lin.Data {
			if fv := float64(v); fv < border.Data[i] {
				border.Data[i] = fv
			}
		}
	}

	out := voxel.NewFloat(dt.Dims)
	for i, v := range dt.Data {
		if excess := v - border.Data[i]; excess > 0 {
			out.Data[i] = excess
		}
	}
	return out
}
