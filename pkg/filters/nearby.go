package filters

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"

	"porenet/pkg/labeling"
	"porenet/pkg/voxel"
)

// peakCenter is a peak cluster's center of mass as a KD-tree point. Centers
// are always embedded in three dimensions; 2D images leave the third
// coordinate at zero, which does not disturb distances.
type peakCenter struct {
	pos [3]float64
	id  int // cluster label minus one
}

// Compare implements the kdtree.Comparable interface.
func (p peakCenter) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(peakCenter)
	return p.pos[d] - q.pos[d]
}

// Dims returns the number of dimensions for the KD-tree.
func (p peakCenter) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between two centers.
func (p peakCenter) Distance(c kdtree.Comparable) float64 {
	q := c.(peakCenter)
	var s float64
	for i := range p.pos {
		d := p.pos[i] - q.pos[i]
		s += d * d
	}
	return s
}

// peakCenters is a collection of peakCenter that satisfies kdtree.Interface.
type peakCenters []peakCenter

func (p peakCenters) Index(i int) kdtree.Comparable         { return p[i] }
func (p peakCenters) Len() int                              { return len(p) }
func (p peakCenters) Slice(start, end int) kdtree.Interface { return p[start:end] }

// Pivot implements the kdtree.Interface method.
func (p peakCenters) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(centerPlane{peakCenters: p, Dim: d}, kdtree.MedianOfRandoms(centerPlane{peakCenters: p, Dim: d}, 100))
}

// centerPlane implements sort.Interface and kdtree.SortSlicer for
// peakCenters along one dimension.
type centerPlane struct {
	peakCenters
	kdtree.Dim
}

func (p centerPlane) Less(i, j int) bool {
	return p.peakCenters[i].pos[p.Dim] < p.peakCenters[j].pos[p.Dim]
}

func (p centerPlane) Slice(start, end int) kdtree.SortSlicer {
	return centerPlane{peakCenters: p.peakCenters[start:end], Dim: p.Dim}
}

func (p centerPlane) Swap(i, j int) {
	p.peakCenters[i], p.peakCenters[j] = p.peakCenters[j], p.peakCenters[i]
}

// TrimNearbyPeaks finds pairs of peaks that lie nearer to each other than
// either lies to the solid phase and removes, from each such pair, the peak
// with the smaller distance to solid. Two markers that close together are
// the signature of one pore body split by noise; the survivor is the better
// seed because it sits deeper in the pore.
//
// Every pair is judged against the globally computed distance-to-solid
// values rather than any running state, so a mutually close triplet
// converges to its single deepest member in one pass with no iteration.
// When both members of a pair are equally deep the nearest neighbor is
// dropped and the peak under consideration survives; which member that is
// depends only on cluster label order.
func TrimNearbyPeaks(peaks *voxel.Bool, dt *voxel.Float) (*voxel.Bool, error) {
	if !peaks.Dims.Equal(dt.Dims) {
		return nil, fmt.Errorf("%w: peaks %v vs dt %v", voxel.ErrShapeMismatch, peaks.Dims, dt.Dims)
	}

	labels, n := labeling.Label(peaks, voxel.Full)
	if n < 2 {
		return peaks.Clone(), nil
	}
	centers := labeling.CentersOfMass(labels, n)

	pts := make(peakCenters, n)
	for i, c := range centers {
		pt := peakCenter{id: i}
		for k, v := range c {
			pt.pos[k] = float64(v)
		}
		pts[i] = pt
	}
	tree := kdtree.New(pts, false)

	// For each center, its single nearest other center. Tree construction
	// partitions pts in place, so entries are matched by their id field,
	// never by slice position.
	nearest := make([]int, n)
	nearestDist := make([]float64, n)
	for i := range pts {
		p := pts[i]
		keeper := kdtree.NewNKeeper(2)
		tree.NearestSet(keeper, p)
		best, bestDist := -1, math.Inf(1)
		for _, cd := range keeper.Heap {
			pc, ok := cd.Comparable.(peakCenter)
			if !ok || pc.id == p.id {
				continue
			}
			if cd.Dist < bestDist {
				best, bestDist = pc.id, cd.Dist
			}
		}
		nearest[p.id] = best
		nearestDist[p.id] = math.Sqrt(bestDist)
	}

	// Distance to solid, read at each cluster's center voxel.
	distToSolid := make([]float64, n)
	for i, c := range centers {
		distToSolid[i] = dt.Data[dt.Dims.Index(c)]
	}

	drop := make(map[int]bool)
	for i := 0; i < n; i++ {
		if nearestDist[i] >= distToSolid[i] {
			continue
		}
		if distToSolid[i] < distToSolid[nearest[i]] {
			drop[i] = true
		} else {
			drop[nearest[i]] = true
		}
	}

	out := peaks.Clone()
	if len(drop) == 0 {
		return out, nil
	}
	boxes := labeling.Objects(labels, n)
	for id := range drop {
		label := id + 1
		boxes[id].ForEach(func(c []int) {
			idx := labels.Dims.Index(c)
			if labels.Data[idx] == label {
				out.Data[idx] = false
			}
		})
	}
	return out, nil
}
