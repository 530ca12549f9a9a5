package snow

import (
	"gonum.org/v1/gonum/stat"
)

// Summary holds aggregate statistics of a partitioning result.
type Summary struct {
	// Regions is the number of pore regions.
	Regions int

	// Porosity is the void fraction of the image.
	Porosity float64

	// MeanRegionSize and StdRegionSize describe the region size
	// distribution in voxels.
	MeanRegionSize float64
	StdRegionSize  float64

	// MaxRegionSize is the largest region's voxel count.
	MaxRegionSize int
}

// Summarize computes aggregate statistics over a result bundle.
func Summarize(res *Results) Summary {
	var s Summary
	s.Porosity = float64(res.Im.Count()) / float64(res.Im.Dims.Len())

	max := res.Regions.Max()
	if max == 0 {
		return s
	}
	counts := make([]int, max+1)
	for _, l := range res.Regions.Data {
		counts[l]++
	}

	sizes := make([]float64, 0, max)
	for l := 1; l <= max; l++ {
		if counts[l] == 0 {
			continue
		}
		sizes = append(sizes, float64(counts[l]))
		if counts[l] > s.MaxRegionSize {
			s.MaxRegionSize = counts[l]
		}
	}
	s.Regions = len(sizes)
	s.MeanRegionSize = stat.Mean(sizes, nil)
	if len(sizes) > 1 {
		s.StdRegionSize = stat.StdDev(sizes, nil)
	}
	return s
}
