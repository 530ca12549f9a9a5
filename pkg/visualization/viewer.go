// Package visualization renders partitioned region images for inspection.
// Axis-aligned slices of a label grid are drawn with a deterministic color
// per label (background stays black) and exported as PNG sequences, which
// is usually enough to judge the quality of a segmentation at a glance.
package visualization

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"porenet/pkg/voxel"
)

// Viewer extracts and renders 2D slices of a labeled region image.
type Viewer struct {
	regions *voxel.Int

	// dimensions of the volume; 2D grids behave as depth 1
	width  int
	height int
	depth  int
}

// NewViewer creates a viewer over a region label grid of rank 2 or 3.
func NewViewer(regions *voxel.Int) (*Viewer, error) {
	v := &Viewer{regions: regions}
	switch regions.Dims.Rank() {
	case 2:
		v.depth = 1
		v.height = regions.Dims[0]
		v.width = regions.Dims[1]
	case 3:
		v.depth = regions.Dims[0]
		v.height = regions.Dims[1]
		v.width = regions.Dims[2]
	default:
		return nil, fmt.Errorf("visualization: rank %d regions not renderable", regions.Dims.Rank())
	}
	return v, nil
}

// labelColor maps a label to a stable, well-spread RGB color. Label 0 is
// black. The multiplicative hash spreads consecutive labels across hue
// space, which combined with label randomization keeps touching regions
// distinguishable.
func labelColor(label int) color.RGBA {
	if label == 0 {
		return color.RGBA{A: 255}
	}
	h := uint32(label) * 2654435761
	return color.RGBA{
		R: uint8(55 + (h>>0)%200),
		G: uint8(55 + (h>>8)%200),
		B: uint8(55 + (h>>16)%200),
		A: 255,
	}
}

// ExtractSlice renders the 2D slice of the region image at the given
// position along the axis ("x", "y" or "z"). For 2D grids only axis "z"
// position 0 is valid.
func (v *Viewer) ExtractSlice(axis string, position int) (image.Image, error) {
	if position < 0 {
		return nil, fmt.Errorf("position must be non-negative")
	}

	at := func(z, y, x int) int {
		if v.regions.Dims.Rank() == 2 {
			return v.regions.Data[y*v.width+x]
		}
		return v.regions.Data[(z*v.height+y)*v.width+x]
	}

	var img *image.RGBA
	switch axis {
	case "x", "X":
		if position >= v.width {
			return nil, fmt.Errorf("position %d exceeds width %d", position, v.width)
		}
		img = image.NewRGBA(image.Rect(0, 0, v.depth, v.height))
		for y := 0; y < v.height; y++ {
			for z := 0; z < v.depth; z++ {
				img.SetRGBA(z, y, labelColor(at(z, y, position)))
			}
		}

	case "y", "Y":
		if position >= v.height {
			return nil, fmt.Errorf("position %d exceeds height %d", position, v.height)
		}
		img = image.NewRGBA(image.Rect(0, 0, v.width, v.depth))
		for z := 0; z < v.depth; z++ {
			for x := 0; x < v.width; x++ {
				img.SetRGBA(x, z, labelColor(at(z, position, x)))
			}
		}

	case "z", "Z":
		if position >= v.depth {
			return nil, fmt.Errorf("position %d exceeds depth %d", position, v.depth)
		}
		img = image.NewRGBA(image.Rect(0, 0, v.width, v.height))
		for y := 0; y < v.height; y++ {
			for x := 0; x < v.width; x++ {
				img.SetRGBA(x, y, labelColor(at(position, y, x)))
			}
		}

	default:
		return nil, fmt.Errorf("invalid axis: %s (must be x, y, or z)", axis)
	}

	return img, nil
}

// SaveSlice saves a rendered slice as a PNG image.
func (v *Viewer) SaveSlice(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// SaveSliceSequence renders and saves every slice along the specified axis.
func (v *Viewer) SaveSliceSequence(axis string, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	var maxPos int
	switch axis {
	case "x", "X":
		maxPos = v.width
	case "y", "Y":
		maxPos = v.height
	case "z", "Z":
		maxPos = v.depth
	default:
		return fmt.Errorf("invalid axis: %s (must be x, y, or z)", axis)
	}

	for pos := 0; pos < maxPos; pos++ {
		img, err := v.ExtractSlice(axis, pos)
		if err != nil {
			return err
		}

		filename := filepath.Join(outputDir, fmt.Sprintf("slice_%s_%03d.png", axis, pos))
		if err := v.SaveSlice(img, filename); err != nil {
			return err
		}
	}

	return nil
}
