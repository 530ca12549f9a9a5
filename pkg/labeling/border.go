package labeling

import "porenet/pkg/voxel"

// Border returns a mask of the outermost faces of a grid: every voxel with
// at least one coordinate on the first or last plane of its axis. Downstream
// network extraction uses this to tag boundary pores.
func Border(d voxel.Dims) *voxel.Bool {
	out := voxel.NewBool(d)
	c := make([]int, d.Rank())
	for i := range out.Data {
		d.Coords(i, c)
		for k, v := range c {
			if v == 0 || v == d[k]-1 {
				out.Data[i] = true
				break
			}
		}
	}
	return out
}
