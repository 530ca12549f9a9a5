package filters

import (
	"fmt"

	"github.com/rs/zerolog"

	"porenet/pkg/labeling"
	"porenet/pkg/voxel"
)

// saddlePad is the margin added around each cluster's bounding box so the
// dilation loop has room to grow without touching the crop boundary.
const saddlePad = 10

// TrimSaddlePoints removes candidate peaks that sit on a saddle or ridge of
// the distance field rather than on a true regional maximum. Naive local
// maximum detection marks such voxels because the neighborhood is finite;
// left in place they over-segment a single pore into several regions.
//
// Each full-connectivity cluster of the peak set is resolved independently
// inside a cropped sub-volume. The cluster's voxel set is dilated one step
// at a time; after each dilation the voxels holding the maximum distance
// value within the dilated set (and inside the void phase) form a candidate
// peak set. If that candidate coincides exactly with the original cluster,
// the cluster is a genuine peak and is kept. If it no longer touches the
// original cluster at all, the cluster was a saddle: the dilation escaped
// to a strictly higher summit elsewhere, and the cluster is dropped. Any
// other outcome is ambiguous and the dilation continues, up to maxIters
// steps. Exhausting maxIters keeps the cluster as-is and logs a warning; it
// indicates degenerate geometry, not a fatal condition.
//
// The returned peak set is a fresh grid and never gains voxels relative to
// the input.
func TrimSaddlePoints(peaks *voxel.Bool, dt *voxel.Float, maxIters int, log zerolog.Logger) (*voxel.Bool, error) {
	if !peaks.Dims.Equal(dt.Dims) {
		return nil, fmt.Errorf("%w: peaks %v vs dt %v", voxel.ErrShapeMismatch, peaks.Dims, dt.Dims)
	}

	out := peaks.Clone()
	labels, n := labeling.Label(peaks, voxel.Full)
	boxes := labeling.Objects(labels, n)

	for i := 0; i < n; i++ {
		label := i + 1
		box := boxes[i].Pad(saddlePad, peaks.Dims)

		labelsCrop := voxel.CropInt(labels, box)
		dtCrop := voxel.CropFloat(dt, box)

		cluster := voxel.NewBool(labelsCrop.Dims)
		for j, l := range labelsCrop.Data {
			cluster.Data[j] = l == label
		}

		keep := true
		resolved := false
		working := cluster.Clone()
		for iter := 0; iter < maxIters; iter++ {
			working = dilate(working)

			max := 0.0
			for j, in := range working.Data {
				if in && dtCrop.Data[j] > max {
					max = dtCrop.Data[j]
				}
			}

			equal := true
			overlap := false
			for j := range dtCrop.Data {
				cand := working.Data[j] && dtCrop.Data[j] == max && dtCrop.Data[j] > 0
				if cand != cluster.Data[j] {
					equal = false
				}
				if cand && cluster.Data[j] {
					overlap = true
				}
			}
			if equal {
				resolved = true
				break
			}
			if !overlap {
				keep = false
				resolved = true
				break
			}
		}
		if !resolved {
			log.Warn().
				Int("cluster", label).
				Int("maxIters", maxIters).
				Msg("saddle trimming did not converge; keeping cluster, consider a larger iteration bound")
		}

		if !keep {
			clearLabel(out, labels, label, box)
		}
	}
	return out, nil
}

// clearLabel zeroes the voxels of one cluster, restricted to its bounding
// box. Only the cluster's own voxels are touched: other clusters whose
// boxes overlap are left alone, so per-cluster decisions stay independent.
func clearLabel(out *voxel.Bool, labels *voxel.Int, label int, box voxel.Box) {
	box.ForEach(func(c []int) {
		idx := labels.Dims.Index(c)
		if labels.Data[idx] == label {
			out.Data[idx] = false
		}
	})
}
