// Package labeling provides connected-component labeling and the label
// bookkeeping used around the partitioning pipeline: object bounding boxes,
// centers of mass, contiguous relabeling, color randomization, and border
// masks.
//
// Labels are positive integers assigned in raster order of first contact;
// label 0 always denotes background.
package labeling

import (
	"github.com/theodesp/unionfind"

	"porenet/pkg/voxel"
)

// Label assigns a label to every connected component of true voxels in im
// using the given connectivity. It returns the label grid and the number of
// components. The classic two-pass scheme is used: provisional labels are
// assigned in raster order, equivalences collected against already-visited
// neighbors, then resolved through a union-find structure and compacted to
// 1..n.
func Label(im *voxel.Bool, conn voxel.Connectivity) (*voxel.Int, int) {
	rank := im.Dims.Rank()
	labels := voxel.NewInt(im.Dims)
	backward := voxel.BackwardOffsets(rank, conn)

	provisional := 0
	var pairs [][2]int

	c := make([]int, rank)
	nb := make([]int, rank)
	for i, v := range im.Data {
		if !v {
			continue
		}
		im.Dims.Coords(i, c)
		first := 0
		for _, off := range backward {
			for k := range off {
				nb[k] = c[k] + off[k]
			}
			if !im.Dims.InBounds(nb) {
				continue
			}
			l := labels.Data[im.Dims.Index(nb)]
			if l == 0 {
				continue
			}
			if first == 0 {
				first = l
			} else if l != first {
				pairs = append(pairs, [2]int{first, l})
			}
		}
		if first == 0 {
			provisional++
			first = provisional
		}
		labels.Data[i] = first
	}

	if provisional == 0 {
		return labels, 0
	}

	uf := unionfind.New(provisional + 1)
	for _, p := range pairs {
		uf.Union(p[0], p[1])
	}

	// Compact roots to contiguous labels in raster order of first contact.
	compact := make([]int, provisional+1)
	n := 0
	for i, l := range labels.Data {
		if l == 0 {
			continue
		}
		root := uf.Root(l)
		if compact[root] == 0 {
			n++
			compact[root] = n
		}
		labels.Data[i] = compact[root]
	}
	return labels, n
}

// Objects returns the bounding box of every label 1..n of a label grid.
// The box of label l is at index l-1.
func Objects(labels *voxel.Int, n int) []voxel.Box {
	boxes := make([]voxel.Box, n)
	for i := range boxes {
		boxes[i] = voxel.EmptyBox(labels.Dims)
	}
	c := make([]int, labels.Dims.Rank())
	for i, l := range labels.Data {
		if l == 0 {
			continue
		}
		labels.Dims.Coords(i, c)
		boxes[l-1].Extend(c)
	}
	return boxes
}

// CentersOfMass returns the center of mass of every label 1..n, floored to
// integer voxel coordinates. The center of an oddly shaped component may not
// lie on one of its own voxels.
func CentersOfMass(labels *voxel.Int, n int) [][]int {
	rank := labels.Dims.Rank()
	sums := make([][]int, n)
	counts := make([]int, n)
	for i := range sums {
		sums[i] = make([]int, rank)
	}
	c := make([]int, rank)
	for i, l := range labels.Data {
		if l == 0 {
			continue
		}
		labels.Dims.Coords(i, c)
		for k := range c {
			sums[l-1][k] += c[k]
		}
		counts[l-1]++
	}
	centers := make([][]int, n)
	for i := range centers {
		centers[i] = make([]int, rank)
		for k := range centers[i] {
			centers[i][k] = sums[i][k] / counts[i]
		}
	}
	return centers
}
