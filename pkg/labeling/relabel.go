package labeling

import (
	"math/rand"

	"porenet/pkg/voxel"
)

// MakeContiguous relabels a label grid so the labels present become 1..n in
// order of first appearance, preserving 0 as background. It returns the new
// grid and n.
func MakeContiguous(labels *voxel.Int) (*voxel.Int, int) {
	out := voxel.NewInt(labels.Dims)
	remap := make(map[int]int)
	n := 0
	for i, l := range labels.Data {
		if l == 0 {
			continue
		}
		m, ok := remap[l]
		if !ok {
			n++
			m = n
			remap[l] = m
		}
		out.Data[i] = m
	}
	return out, n
}

// RandomizeColors remaps the nonzero labels of a region grid through a
// random permutation of the same label set, preserving 0 as background. The
// mapping is a bijection, so region identity is unchanged; only the label
// values move. Spatially adjacent regions then rarely carry adjacent label
// values, which makes rendered output far easier to tell apart.
func RandomizeColors(labels *voxel.Int, rng *rand.Rand) *voxel.Int {
	max := labels.Max()
	if max == 0 {
		return labels.Clone()
	}
	perm := rng.Perm(max)
	remap := make([]int, max+1)
	for i := 0; i < max; i++ {
		remap[i+1] = perm[i] + 1
	}
	out := voxel.NewInt(labels.Dims)
	for i, l := range labels.Data {
		out.Data[i] = remap[l]
	}
	return out
}
