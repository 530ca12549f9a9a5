package filters

import "porenet/pkg/voxel"

// forEachLine visits every 1D line of the grid running along the given
// axis, calling fn with the flat index of the line's first voxel, the stride
// between consecutive voxels on the line, and the line length. The axis-wise
// transforms (linear distance, EDT sweeps, separable convolution) are all
// built on this iteration.
func forEachLine(d voxel.Dims, axis int, fn func(base, stride, n int)) {
	strides := d.Strides()
	stride := strides[axis]
	n := d[axis]
	rank := d.Rank()

	c := make([]int, rank)
	for {
		fn(d.Index(c), stride, n)
		k := rank - 1
		for k >= 0 {
			if k == axis {
				k--
				continue
			}
			c[k]++
			if c[k] < d[k] {
				break
			}
			c[k] = 0
			k--
		}
		if k < 0 {
			break
		}
	}
}

// reflect maps an out-of-bounds line position back into [0,n) by mirroring
// about the array edges, matching the reflected-border convention of the
// original filter library.
func reflect(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}
