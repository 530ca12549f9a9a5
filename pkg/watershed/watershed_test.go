package watershed

import (
	"errors"
	"testing"

	"porenet/pkg/filters"
	"porenet/pkg/voxel"
)

// dumbbell builds a 2D void mask of two square pores joined by a narrow
// throat, and returns the mask plus the centers of the two pores.
func dumbbell() (*voxel.Bool, []int, []int) {
	d := voxel.NewDims(11, 21)
	im := voxel.NewBool(d)
	set := func(y0, y1, x0, x1 int) {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				im.Data[y*21+x] = true
			}
		}
	}
	set(2, 8, 2, 8)   // left pore
	set(2, 8, 12, 18) // right pore
	set(5, 5, 9, 11)  // throat
	return im, []int{5, 5}, []int{5, 15}
}

// TestSegmentTwoBasins verifies that two markers flood a dumbbell pore pair
// into two basins covering all of the void and none of the solid.
func TestSegmentTwoBasins(t *testing.T) {
	im, c1, c2 := dumbbell()
	dt := filters.EDT(im)

	field := voxel.NewFloat(dt.Dims)
	for i, v := range dt.Data {
		field.Data[i] = -v
	}
	markers := voxel.NewInt(dt.Dims)
	markers.Data[dt.Dims.Index(c1)] = 1
	markers.Data[dt.Dims.Index(c2)] = 2

	out, err := Segment(field, markers, im)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, void := range im.Data {
		if void && out.Data[i] == 0 {
			t.Fatalf("Void voxel %d left unlabeled", i)
		}
		if !void && out.Data[i] != 0 {
			t.Fatalf("Solid voxel %d labeled %d", i, out.Data[i])
		}
		if out.Data[i] < 0 || out.Data[i] > 2 {
			t.Fatalf("Unexpected label %d at voxel %d", out.Data[i], i)
		}
	}

	if got := out.Data[dt.Dims.Index(c1)]; got != 1 {
		t.Errorf("Expected label 1 at the left pore center, got %d", got)
	}
	if got := out.Data[dt.Dims.Index(c2)]; got != 2 {
		t.Errorf("Expected label 2 at the right pore center, got %d", got)
	}

	// Away from the throat each pore belongs entirely to its own marker.
	if got := out.Data[dt.Dims.Index([]int{2, 2})]; got != 1 {
		t.Errorf("Expected label 1 in the left pore corner, got %d", got)
	}
	if got := out.Data[dt.Dims.Index([]int{8, 18})]; got != 2 {
		t.Errorf("Expected label 2 in the right pore corner, got %d", got)
	}
}

// TestSegmentUnmasked verifies that a nil mask floods the entire grid.
func TestSegmentUnmasked(t *testing.T) {
	d := voxel.NewDims(5, 5)
	field := voxel.NewFloat(d)
	markers := voxel.NewInt(d)
	markers.Data[d.Index([]int{2, 2})] = 7

	out, err := Segment(field, markers, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, l := range out.Data {
		if l != 7 {
			t.Errorf("Expected label 7 at voxel %d, got %d", i, l)
		}
	}
}

// TestSegmentUnreachable verifies that voxels cut off by the mask keep
// label 0.
func TestSegmentUnreachable(t *testing.T) {
	d := voxel.NewDims(3, 5)
	mask := voxel.NewBool(d)
	for _, x := range []int{0, 1, 3, 4} {
		mask.Data[d.Index([]int{1, x})] = true
	}
	field := voxel.NewFloat(d)
	markers := voxel.NewInt(d)
	markers.Data[d.Index([]int{1, 0})] = 1

	out, err := Segment(field, markers, mask)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Data[d.Index([]int{1, 1})] != 1 {
		t.Error("Expected the connected side of the mask to flood")
	}
	if out.Data[d.Index([]int{1, 3})] != 0 || out.Data[d.Index([]int{1, 4})] != 0 {
		t.Error("Expected the disconnected side of the mask to stay unlabeled")
	}
}

// TestSegmentShapeMismatch verifies dimension checking for markers and mask.
func TestSegmentShapeMismatch(t *testing.T) {
	field := voxel.NewFloat(voxel.NewDims(4, 4))
	if _, err := Segment(field, voxel.NewInt(voxel.NewDims(4, 5)), nil); !errors.Is(err, voxel.ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch for markers, got %v", err)
	}
	if _, err := Segment(field, voxel.NewInt(voxel.NewDims(4, 4)), voxel.NewBool(voxel.NewDims(5, 4))); !errors.Is(err, voxel.ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch for mask, got %v", err)
	}
}
