package voxel

// Box is an axis-aligned region of a grid. Min is inclusive, Max exclusive.
// Boxes are used to restrict iterative per-cluster work to a local
// sub-volume.
type Box struct {
	Min, Max []int
}

// EmptyBox returns a box primed for accumulation with Extend: Min at the
// grid extents and Max at zero.
func EmptyBox(d Dims) Box {
	b := Box{Min: make([]int, d.Rank()), Max: make([]int, d.Rank())}
	for i, e := range d {
		b.Min[i] = e
		b.Max[i] = 0
	}
	return b
}

// Extend grows the box to include the coordinate.
func (b *Box) Extend(c []int) {
	for i, v := range c {
		if v < b.Min[i] {
			b.Min[i] = v
		}
		if v+1 > b.Max[i] {
			b.Max[i] = v + 1
		}
	}
}

// Empty reports whether the box contains no voxels.
func (b Box) Empty() bool {
	for i := range b.Min {
		if b.Min[i] >= b.Max[i] {
			return true
		}
	}
	return false
}

// Pad expands the box by pad voxels on every side, clamped to the grid.
func (b Box) Pad(pad int, d Dims) Box {
	o := Box{Min: make([]int, len(b.Min)), Max: make([]int, len(b.Max))}
	for i := range b.Min {
		o.Min[i] = b.Min[i] - pad
		if o.Min[i] < 0 {
			o.Min[i] = 0
		}
		o.Max[i] = b.Max[i] + pad
		if o.Max[i] > d[i] {
			o.Max[i] = d[i]
		}
	}
	return o
}

// Dims returns the extents of the box as grid dimensions.
func (b Box) Dims() Dims {
	d := make(Dims, len(b.Min))
	for i := range b.Min {
		d[i] = b.Max[i] - b.Min[i]
	}
	return d
}

// ForEach visits every coordinate in the box in raster order. The coordinate
// slice passed to fn is reused between calls.
func (b Box) ForEach(fn func(c []int)) {
	if b.Empty() {
		return
	}
	rank := len(b.Min)
	c := make([]int, rank)
	copy(c, b.Min)
	for {
		fn(c)
		k := rank - 1
		for k >= 0 {
			c[k]++
			if c[k] < b.Max[k] {
				break
			}
			c[k] = b.Min[k]
			k--
		}
		if k < 0 {
			break
		}
	}
}

// CropBool copies the boxed region of src into a fresh grid whose dimensions
// are the box extents.
func CropBool(src *Bool, b Box) *Bool {
	out := NewBool(b.Dims())
	local := make([]int, len(b.Min))
	b.ForEach(func(c []int) {
		for i := range c {
			local[i] = c[i] - b.Min[i]
		}
		out.Data[out.Dims.Index(local)] = src.Data[src.Dims.Index(c)]
	})
	return out
}

// CropFloat copies the boxed region of src into a fresh grid.
func CropFloat(src *Float, b Box) *Float {
	out := NewFloat(b.Dims())
	local := make([]int, len(b.Min))
	b.ForEach(func(c []int) {
		for i := range c {
			local[i] = c[i] - b.Min[i]
		}
		out.Data[out.Dims.Index(local)] = src.Data[src.Dims.Index(c)]
	})
	return out
}

// CropInt copies the boxed region of src into a fresh grid.
func CropInt(src *Int, b Box) *Int {
	out := NewInt(b.Dims())
	local := make([]int, len(b.Min))
	b.ForEach(func(c []int) {
		for i := range c {
			local[i] = c[i] - b.Min[i]
		}
		out.Data[out.Dims.Index(local)] = src.Data[src.Dims.Index(c)]
	})
	return out
}
