package filters

import (
	"porenet/pkg/voxel"
)

// Footprint is a structuring element expressed as the set of relative
// coordinate offsets it covers, center included.
type Footprint [][]int

// Disk returns the circular 2D footprint of the given radius: all offsets
// (y,x) with y²+x² ≤ r².
func Disk(r int) Footprint {
	var fp Footprint
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if y*y+x*x <= r*r {
				fp = append(fp, []int{y, x})
			}
		}
	}
	return fp
}

// Ball returns the spherical 3D footprint of the given radius: all offsets
// (z,y,x) with z²+y²+x² ≤ r².
func Ball(r int) Footprint {
	var fp Footprint
	for z := -r; z <= r; z++ {
		for y := -r; y <= r; y++ {
			for x := -r; x <= r; x++ {
				if z*z+y*y+x*x <= r*r {
					fp = append(fp, []int{z, y, x})
				}
			}
		}
	}
	return fp
}

// maximumFilter replaces each voxel with the maximum of the field over the
// footprint centered on it. Offsets falling outside the grid are clipped,
// which for a maximum filter is equivalent to the reflected-border
// convention since reflection only repeats in-bounds values.
func maximumFilter(field *voxel.Float, fp Footprint) *voxel.Float {
	out := voxel.NewFloat(field.Dims)
	rank := field.Dims.Rank()
	c := make([]int, rank)
	nb := make([]int, rank)
	for i := range field.Data {
		field.Dims.Coords(i, c)
		max := field.Data[i]
		for _, off := range fp {
			for k := range off {
				nb[k] = c[k] + off[k]
			}
			if !field.Dims.InBounds(nb) {
				continue
			}
			if v := field.Data[field.Dims.Index(nb)]; v > max {
				max = v
			}
		}
		out.Data[i] = max
	}
	return out
}

// dilate grows a voxel set by one step of the full-connectivity structuring
// element (8 neighbors in 2D, 26 in 3D).
func dilate(im *voxel.Bool) *voxel.Bool {
	out := im.Clone()
	rank := im.Dims.Rank()
	offs := voxel.Offsets(rank, voxel.Full)
	c := make([]int, rank)
	nb := make([]int, rank)
	for i, v := range im.Data {
		if !v {
			continue
		}
		im.Dims.Coords(i, c)
		for _, off := range offs {
			for k := range off {
				nb[k] = c[k] + off[k]
			}
			if im.Dims.InBounds(nb) {
				out.Data[im.Dims.Index(nb)] = true
			}
		}
	}
	return out
}
