// Package watershed implements marker-based watershed segmentation of 2D
// and 3D scalar fields by priority flooding.
//
// The flood starts from labeled marker voxels and always advances through
// the lowest-valued unclaimed voxel next, so each basin grows outward from
// its marker until it meets a ridge claimed by another basin. For the SNOW
// pipeline the field is the negated distance transform: distance maxima
// become basin floors and each surviving peak seeds exactly one region.
package watershed

import (
	"container/heap"
	"fmt"

	"porenet/pkg/voxel"
)

// floodItem is one voxel queued for flooding.
type floodItem struct {
	value float64
	order int // insertion sequence, breaks value ties first-in first-out
	idx   int
	label int
}

// floodHeap orders queued voxels by field value, then insertion order, so
// the segmentation is deterministic for a given input.
type floodHeap []floodItem

func (h floodHeap) Len() int { return len(h) }

func (h floodHeap) Less(i, j int) bool {
	if h[i].value != h[j].value {
		return h[i].value < h[j].value
	}
	return h[i].order < h[j].order
}

func (h floodHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *floodHeap) Push(x any) { *h = append(*h, x.(floodItem)) }

func (h *floodHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Segment floods the field from the marker voxels and returns a label grid
// assigning every reachable voxel to exactly one marker's basin. Voxels on
// a divide go to whichever basin reaches them first in flood order. If mask
// is non-nil, flooding is confined to true voxels; masked-out and
// unreachable voxels keep label 0.
//
// Flooding advances through face neighbors. Field, markers and mask must
// share dimensions.
func Segment(field *voxel.Float, markers *voxel.Int, mask *voxel.Bool) (*voxel.Int, error) {
	if !field.Dims.Equal(markers.Dims) {
		return nil, fmt.Errorf("%w: field %v vs markers %v", voxel.ErrShapeMismatch, field.Dims, markers.Dims)
	}
	if mask != nil && !field.Dims.Equal(mask.Dims) {
		return nil, fmt.Errorf("%w: field %v vs mask %v", voxel.ErrShapeMismatch, field.Dims, mask.Dims)
	}

	out := voxel.NewInt(field.Dims)
	h := make(floodHeap, 0, 1024)
	seq := 0

	inMask := func(i int) bool { return mask == nil || mask.Data[i] }

	for i, l := range markers.Data {
		if l > 0 && inMask(i) {
			out.Data[i] = l
			h = append(h, floodItem{value: field.Data[i], order: seq, idx: i, label: l})
			seq++
		}
	}
	heap.Init(&h)

	rank := field.Dims.Rank()
	offs := voxel.Offsets(rank, voxel.Axial)
	c := make([]int, rank)
	nb := make([]int, rank)

	for h.Len() > 0 {
		cur := heap.Pop(&h).(floodItem)
		field.Dims.Coords(cur.idx, c)
		for _, off := range offs {
			for k := range off {
				nb[k] = c[k] + off[k]
			}
			if !field.Dims.InBounds(nb) {
				continue
			}
			j := field.Dims.Index(nb)
			if out.Data[j] != 0 || !inMask(j) {
				continue
			}
			out.Data[j] = cur.label
			heap.Push(&h, floodItem{value: field.Data[j], order: seq, idx: j, label: cur.label})
			seq++
		}
	}
	return out, nil
}
