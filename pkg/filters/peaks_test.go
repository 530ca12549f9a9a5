package filters

import (
	"errors"
	"testing"

	"porenet/pkg/labeling"
	"porenet/pkg/voxel"
)

// diskMask builds a 2D void-phase mask of a circular pore of the given
// radius centered at (cy,cx).
func diskMask(dims voxel.Dims, cy, cx, r int) *voxel.Bool {
	im := voxel.NewBool(dims)
	for y := 0; y < dims[0]; y++ {
		for x := 0; x < dims[1]; x++ {
			dy, dx := y-cy, x-cx
			im.Data[y*dims[1]+x] = dy*dy+dx*dx <= r*r
		}
	}
	return im
}

// TestDiskBallFootprints verifies footprint sizes for small radii.
func TestDiskBallFootprints(t *testing.T) {
	if got := len(Disk(1)); got != 5 {
		t.Errorf("Expected Disk(1) to cover 5 offsets, got %d", got)
	}
	if got := len(Disk(2)); got != 13 {
		t.Errorf("Expected Disk(2) to cover 13 offsets, got %d", got)
	}
	if got := len(Ball(1)); got != 7 {
		t.Errorf("Expected Ball(1) to cover 7 offsets, got %d", got)
	}
}

// TestFindPeaksLine verifies local maximum detection with an explicit
// footprint on a 1D profile. The second maximum has value 1 and sits next
// to solid, so the lifted solid phase suppresses it.
func TestFindPeaksLine(t *testing.T) {
	dt := voxel.NewFloat(voxel.NewDims(10))
	copy(dt.Data, []float64{0, 1, 2, 1, 0, 1, 0, 0, 3, 0})

	fp := Footprint{{-1}, {0}, {1}}
	peaks, err := FindPeaks(dt, 0, fp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []bool{false, false, true, false, false, false, false, false, true, false}
	for i, w := range want {
		if peaks.Data[i] != w {
			t.Errorf("Expected peak=%v at index %d, got %v", w, i, peaks.Data[i])
		}
	}
}

// TestFindPeaksDiskPore verifies that a single convex pore yields a single
// peak cluster near its center.
func TestFindPeaksDiskPore(t *testing.T) {
	im := diskMask(voxel.NewDims(21, 21), 10, 10, 8)
	dt := EDT(im)

	peaks, err := FindPeaks(dt, 4, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if peaks.Count() == 0 {
		t.Fatal("Expected at least one peak voxel")
	}

	labels, n := labeling.Label(peaks, voxel.Full)
	if n != 1 {
		t.Fatalf("Expected 1 peak cluster, got %d", n)
	}
	center := labeling.CentersOfMass(labels, n)[0]
	if center[0] < 9 || center[0] > 11 || center[1] < 9 || center[1] > 11 {
		t.Errorf("Expected the peak cluster near (10,10), got center %v", center)
	}
	for i, p := range peaks.Data {
		if p && !im.Data[i] {
			t.Errorf("Peak on a solid voxel at index %d", i)
		}
	}
}

// TestFindPeaksDimensionality verifies the nil-footprint rank restriction.
func TestFindPeaksDimensionality(t *testing.T) {
	dt := voxel.NewFloat(voxel.NewDims(7))
	if _, err := FindPeaks(dt, 4, nil); !errors.Is(err, ErrInvalidDimensionality) {
		t.Errorf("Expected ErrInvalidDimensionality, got %v", err)
	}
}

// TestReducePeaks verifies that a plateau cluster collapses to its single
// center-of-mass voxel.
func TestReducePeaks(t *testing.T) {
	peaks := voxel.NewBool(voxel.NewDims(5, 7))
	for _, c := range [][]int{{2, 1}, {2, 2}, {2, 3}} {
		peaks.Data[peaks.Dims.Index(c)] = true
	}
	peaks.Data[peaks.Dims.Index([]int{0, 6})] = true

	out := ReducePeaks(peaks)
	if got := out.Count(); got != 2 {
		t.Fatalf("Expected 2 reduced peaks, got %d", got)
	}
	if !out.Data[out.Dims.Index([]int{2, 2})] {
		t.Error("Expected the plateau to collapse to (2,2)")
	}
	if !out.Data[out.Dims.Index([]int{0, 6})] {
		t.Error("Expected the isolated peak to survive unchanged")
	}
}
