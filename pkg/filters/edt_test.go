package filters

import (
	"math"
	"testing"

	"porenet/pkg/voxel"
)

const distTol = 1e-9

// TestEDTLine verifies exact distances on a 1D profile with two runs.
func TestEDTLine(t *testing.T) {
	im := lineMask([]int{0, 1, 1, 1, 0, 1, 1, 0})
	dt := EDT(im)
	want := []float64{0, 1, 2, 1, 0, 1, 1, 0}
	for i, w := range want {
		if math.Abs(dt.Data[i]-w) > distTol {
			t.Errorf("Expected %v at index %d, got %v", w, i, dt.Data[i])
		}
	}
}

// TestEDTSingleSolid verifies Euclidean (not chessboard or city-block)
// distances around an isolated solid voxel.
func TestEDTSingleSolid(t *testing.T) {
	im := voxel.NewBool(voxel.NewDims(5, 5))
	for i := range im.Data {
		im.Data[i] = true
	}
	im.Data[2*5+2] = false

	dt := EDT(im)
	cases := []struct {
		y, x int
		want float64
	}{
		{2, 2, 0},
		{2, 3, 1},
		{1, 1, math.Sqrt(2)},
		{0, 0, 2 * math.Sqrt(2)},
		{0, 2, 2},
		{4, 1, math.Sqrt(5)},
	}
	for _, tc := range cases {
		got := dt.Data[tc.y*5+tc.x]
		if math.Abs(got-tc.want) > distTol {
			t.Errorf("Expected dt(%d,%d)=%v, got %v", tc.y, tc.x, tc.want, got)
		}
	}
}

// TestEDTSolidIsZero verifies solid voxels always carry distance zero.
func TestEDTSolidIsZero(t *testing.T) {
	im := voxel.NewBool(voxel.NewDims(4, 4))
	for i := range im.Data {
		im.Data[i] = i%3 == 0
	}
	dt := EDT(im)
	for i, v := range im.Data {
		if !v && dt.Data[i] != 0 {
			t.Errorf("Expected 0 at solid index %d, got %v", i, dt.Data[i])
		}
		if v && dt.Data[i] <= 0 {
			t.Errorf("Expected positive distance at void index %d, got %v", i, dt.Data[i])
		}
	}
}

// TestEDTAllVoid verifies the no-solid convention.
func TestEDTAllVoid(t *testing.T) {
	im := voxel.NewBool(voxel.NewDims(3, 3))
	for i := range im.Data {
		im.Data[i] = true
	}
	dt := EDT(im)
	for i, v := range dt.Data {
		if !math.IsInf(v, 1) {
			t.Errorf("Expected +Inf at index %d, got %v", i, v)
		}
	}
}

// TestEDTDegenerateAxis verifies that a one-voxel-thick 3D image transforms
// identically to its 2D cross-section.
func TestEDTDegenerateAxis(t *testing.T) {
	im2 := voxel.NewBool(voxel.NewDims(5, 5))
	im3 := voxel.NewBool(voxel.NewDims(1, 5, 5))
	for i := range im2.Data {
		v := i != 2*5+2
		im2.Data[i] = v
		im3.Data[i] = v
	}

	dt2 := EDT(im2)
	dt3 := EDT(im3)
	if !dt3.Dims.Equal(im3.Dims) {
		t.Fatalf("Expected dt dims %v, got %v", im3.Dims, dt3.Dims)
	}
	for i := range dt2.Data {
		if math.Abs(dt2.Data[i]-dt3.Data[i]) > distTol {
			t.Errorf("Index %d: 2D gives %v, degenerate 3D gives %v", i, dt2.Data[i], dt3.Data[i])
		}
	}
}

// TestEDT3D verifies a basic 3D distance.
func TestEDT3D(t *testing.T) {
	im := voxel.NewBool(voxel.NewDims(5, 5, 5))
	for i := range im.Data {
		im.Data[i] = true
	}
	im.Data[0] = false // solid at the (0,0,0) corner

	dt := EDT(im)
	got := dt.Data[im.Dims.Index([]int{2, 2, 1})]
	if want := 3.0; math.Abs(got-want) > distTol {
		t.Errorf("Expected dt(2,2,1)=%v, got %v", want, got)
	}
	got = dt.Data[im.Dims.Index([]int{1, 1, 1})]
	if want := math.Sqrt(3); math.Abs(got-want) > distTol {
		t.Errorf("Expected dt(1,1,1)=%v, got %v", want, got)
	}
}
