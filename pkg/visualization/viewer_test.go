package visualization

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"porenet/pkg/voxel"
)

// testRegions builds a small 3D label grid with two regions split along x.
func testRegions() *voxel.Int {
	d := voxel.NewDims(2, 3, 4)
	regions := voxel.NewInt(d)
	c := make([]int, 3)
	for i := range regions.Data {
		d.Coords(i, c)
		if c[2] < 2 {
			regions.Data[i] = 1
		} else {
			regions.Data[i] = 2
		}
	}
	return regions
}

// TestNewViewerRanks verifies accepted and rejected grid ranks.
func TestNewViewerRanks(t *testing.T) {
	if _, err := NewViewer(testRegions()); err != nil {
		t.Errorf("unexpected error for a 3D grid: %v", err)
	}
	v, err := NewViewer(voxel.NewInt(voxel.NewDims(3, 4)))
	if err != nil {
		t.Fatalf("unexpected error for a 2D grid: %v", err)
	}
	if v.depth != 1 {
		t.Errorf("Expected 2D grids to behave as depth 1, got %d", v.depth)
	}
	if _, err := NewViewer(voxel.NewInt(voxel.NewDims(5))); err == nil {
		t.Error("Expected an error for a rank-1 grid")
	}
}

// TestLabelColor verifies background is black and distinct labels get
// distinct colors.
func TestLabelColor(t *testing.T) {
	if got := labelColor(0); got != (color.RGBA{A: 255}) {
		t.Errorf("Expected black for label 0, got %v", got)
	}
	c1, c2 := labelColor(1), labelColor(2)
	if c1 == c2 {
		t.Error("Expected adjacent labels to render differently")
	}
}

// TestExtractSlice verifies slice geometry and pixel coloring along each
// axis.
func TestExtractSlice(t *testing.T) {
	v, err := NewViewer(testRegions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := v.ExtractSlice("z", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("Expected a 4x3 z slice, got %dx%d", b.Dx(), b.Dy())
	}
	if got := img.At(0, 0); got != labelColor(1) {
		t.Errorf("Expected label-1 color at (0,0), got %v", got)
	}
	if got := img.At(3, 0); got != labelColor(2) {
		t.Errorf("Expected label-2 color at (3,0), got %v", got)
	}

	img, err = v.ExtractSlice("x", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b = img.Bounds()
	if b.Dx() != 2 || b.Dy() != 3 {
		t.Errorf("Expected a 2x3 x slice, got %dx%d", b.Dx(), b.Dy())
	}

	if _, err := v.ExtractSlice("z", 5); err == nil {
		t.Error("Expected an error for an out-of-range position")
	}
	if _, err := v.ExtractSlice("w", 0); err == nil {
		t.Error("Expected an error for an invalid axis")
	}
}

// TestSaveSliceSequence verifies one PNG per slice lands in the output
// directory.
func TestSaveSliceSequence(t *testing.T) {
	v, err := NewViewer(testRegions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dir := filepath.Join(t.TempDir(), "out")
	if err := v.SaveSliceSequence("z", dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 slice files, got %d", len(entries))
	}
}
