// Package models holds the plain data structures shared between the CLI
// and the partitioning packages.
package models

import (
	"image"

	"porenet/pkg/voxel"
)

// Stack is an ordered sequence of grayscale slice images forming a volume.
// Slice order follows the z axis.
type Stack struct {
	// Slices are the individual images, anatomically ordered.
	Slices []image.Image

	// Width and Height are the shared slice dimensions in pixels.
	Width  int
	Height int
}

// ToMask converts the stack to a boolean phase mask: a voxel is void when
// its normalized luminance exceeds threshold, or falls below it when invert
// is set. A single-slice stack yields a rank-2 grid, a multi-slice stack a
// rank-3 grid with slice index as the leading axis.
func (s *Stack) ToMask(threshold float64, invert bool) *voxel.Bool {
	var dims voxel.Dims
	if len(s.Slices) == 1 {
		dims = voxel.NewDims(s.Height, s.Width)
	} else {
		dims = voxel.NewDims(len(s.Slices), s.Height, s.Width)
	}
	mask := voxel.NewBool(dims)

	for z, img := range s.Slices {
		for y := 0; y < s.Height; y++ {
			for x := 0; x < s.Width; x++ {
				r, _, _, _ := img.At(x, y).RGBA()
				lum := float64(r) / 65535.0
				void := lum > threshold
				if invert {
					void = !void
				}
				mask.Data[(z*s.Height+y)*s.Width+x] = void
			}
		}
	}
	return mask
}
