package voxel

// Connectivity selects which voxels count as neighbors of a voxel.
type Connectivity int

const (
	// Axial connects face neighbors only: 4 in 2D, 6 in 3D.
	Axial Connectivity = iota

	// Full additionally connects diagonal neighbors: 8 in 2D, 26 in 3D.
	// Peak clusters are always formed with Full connectivity.
	Full
)

// Offsets returns the relative coordinate offsets of the neighborhood for
// the given rank, excluding the center voxel. Offsets are produced in
// lexicographic order so that the first half precedes the center in raster
// order, which the two-pass component labeler relies on.
func Offsets(rank int, conn Connectivity) [][]int {
	var out [][]int
	c := make([]int, rank)
	for i := range c {
		c[i] = -1
	}
	for {
		zero := true
		abs := 0
		for _, v := range c {
			if v != 0 {
				zero = false
			}
			if v < 0 {
				abs -= v
			} else {
				abs += v
			}
		}
		if !zero && (conn == Full || abs == 1) {
			off := make([]int, rank)
			copy(off, c)
			out = append(out, off)
		}
		k := rank - 1
		for k >= 0 {
			c[k]++
			if c[k] <= 1 {
				break
			}
			c[k] = -1
			k--
		}
		if k < 0 {
			break
		}
	}
	return out
}

// BackwardOffsets returns the subset of Offsets that precede the center
// voxel in raster order.
func BackwardOffsets(rank int, conn Connectivity) [][]int {
	all := Offsets(rank, conn)
	out := make([][]int, 0, len(all)/2)
	for _, off := range all {
		if lexBefore(off) {
			out = append(out, off)
		}
	}
	return out
}

// lexBefore reports whether an offset points at a voxel visited earlier in
// raster order (first nonzero component negative).
func lexBefore(off []int) bool {
	for _, v := range off {
		if v < 0 {
			return true
		}
		if v > 0 {
			return false
		}
	}
	return false
}
