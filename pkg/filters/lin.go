package filters

import (
	"fmt"

	"porenet/pkg/voxel"
)

// Recognized modes for LinearDistanceTransform.
const (
	ModeForward  = "forward"
	ModeReverse  = "reverse"
	ModeBackward = "backward" // alias for reverse
	ModeBoth     = "both"
)

// LinearDistanceTransform replaces each void voxel with the number of
// contiguous void voxels separating it from the nearest solid voxel along
// one axis, counted inclusively from the last boundary crossing.
//
// Mode "forward" accumulates in the increasing-index direction, so a run of
// void voxels reads 1,2,3,... away from the solid voxel behind it. Mode
// "reverse" (alias "backward") accumulates the other way. Mode "both" takes
// the element-wise minimum of the two and is the only symmetric variant; it
// is what border-artifact detection uses.
//
// Runs touching the image edge keep counting as if the edge were void,
// which is exactly the property FindDTArtifacts exploits.
func LinearDistanceTransform(im *voxel.Bool, axis int, mode string) (*voxel.Int, error) {
	if im.Dims.Rank() > 3 {
		return nil, fmt.Errorf("%w: rank %d", ErrInvalidDimensionality, im.Dims.Rank())
	}
	if axis < 0 || axis >= im.Dims.Rank() {
		return nil, fmt.Errorf("filters: axis %d out of range for rank %d image", axis, im.Dims.Rank())
	}

	switch mode {
	case ModeForward, ModeReverse, ModeBackward, ModeBoth:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedMode, mode)
	}

	out := voxel.NewInt(im.Dims)
	forEachLine(im.Dims, axis, func(base, stride, n int) {
		if mode == ModeForward || mode == ModeBoth {
			run := 0
			for i := 0; i < n; i++ {
				idx := base + i*stride
				if im.Data[idx] {
					run++
				} else {
					run = 0
				}
				out.Data[idx] = run
			}
		}
		if mode == ModeReverse || mode == ModeBackward {
			run := 0
			for i := n - 1; i >= 0; i-- {
				idx := base + i*stride
				if im.Data[idx] {
					run++
				} else {
					run = 0
				}
				out.Data[idx] = run
			}
		}
		if mode == ModeBoth {
			run := 0
			for i := n - 1; i >= 0; i-- {
				idx := base + i*stride
				if im.Data[idx] {
					run++
				} else {
					run = 0
				}
				if run < out.Data[idx] {
					out.Data[idx] = run
				}
			}
		}
	})
	return out, nil
}
