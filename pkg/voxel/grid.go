// Package voxel provides the flat-indexed grid types shared by the
// partitioning pipeline. A grid is a rank-2 or rank-3 array stored in
// row-major order (last axis varies fastest), with three value views used at
// different pipeline stages: a boolean phase mask, a scalar distance field,
// and an integer label field. All three share the same Dims.
package voxel

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when two grids that must share dimensions do
// not, for example a precomputed distance field paired with an image of a
// different extent.
var ErrShapeMismatch = errors.New("voxel: grids must share the same dimensions")

// Dims describes the extent of a grid along each axis. Rank 1 is accepted by
// the axis-wise filters; the full pipeline operates on rank 2 and 3.
type Dims []int

// NewDims builds a Dims value from per-axis extents. It panics on
// non-positive extents since a grid with an empty axis is never meaningful
// in this pipeline.
func NewDims(extents ...int) Dims {
	for _, e := range extents {
		if e < 1 {
			panic(fmt.Sprintf("voxel: non-positive extent %d", e))
		}
	}
	d := make(Dims, len(extents))
	copy(d, extents)
	return d
}

// Rank returns the number of axes.
func (d Dims) Rank() int { return len(d) }

// Len returns the total number of voxels.
func (d Dims) Len() int {
	n := 1
	for _, e := range d {
		n *= e
	}
	return n
}

// Equal reports whether two Dims describe the same extents.
func (d Dims) Equal(o Dims) bool {
	if len(d) != len(o) {
		return false
	}
	for i := range d {
		if d[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (d Dims) Clone() Dims {
	o := make(Dims, len(d))
	copy(o, d)
	return o
}

// Strides returns the row-major stride of each axis in flat-index units.
func (d Dims) Strides() []int {
	s := make([]int, len(d))
	acc := 1
	for i := len(d) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= d[i]
	}
	return s
}

// Index converts a coordinate vector to a flat index. The coordinate must be
// in bounds; no checking is performed.
func (d Dims) Index(c []int) int {
	idx := 0
	for i, e := range d {
		idx = idx*e + c[i]
	}
	return idx
}

// Coords fills c with the coordinate vector of flat index i and returns it.
// If c is nil a fresh slice is allocated.
func (d Dims) Coords(i int, c []int) []int {
	if c == nil {
		c = make([]int, len(d))
	}
	for k := len(d) - 1; k >= 0; k-- {
		c[k] = i % d[k]
		i /= d[k]
	}
	return c
}

// InBounds reports whether the coordinate vector lies inside the grid.
func (d Dims) InBounds(c []int) bool {
	for i, e := range d {
		if c[i] < 0 || c[i] >= e {
			return false
		}
	}
	return true
}

// Squeeze returns a copy of d with all axes of extent 1 removed. The flat
// data layout of a grid is unchanged by squeezing, so a degenerate 3D grid
// can be processed at rank 2 by swapping its Dims. A fully degenerate grid
// squeezes to rank 1.
func (d Dims) Squeeze() Dims {
	o := make(Dims, 0, len(d))
	for _, e := range d {
		if e != 1 {
			o = append(o, e)
		}
	}
	if len(o) == 0 {
		o = append(o, 1)
	}
	return o
}

// Bool is a boolean grid, used for phase masks and peak sets.
type Bool struct {
	Dims Dims
	Data []bool
}

// NewBool allocates a false-filled boolean grid.
func NewBool(d Dims) *Bool {
	return &Bool{Dims: d.Clone(), Data: make([]bool, d.Len())}
}

// Clone returns a deep copy.
func (b *Bool) Clone() *Bool {
	o := NewBool(b.Dims)
	copy(o.Data, b.Data)
	return o
}

// Count returns the number of true voxels.
func (b *Bool) Count() int {
	n := 0
	for _, v := range b.Data {
		if v {
			n++
		}
	}
	return n
}

// Float is a scalar grid, used for distance fields.
type Float struct {
	Dims Dims
	Data []float64
}

// NewFloat allocates a zero-filled scalar grid.
func NewFloat(d Dims) *Float {
	return &Float{Dims: d.Clone(), Data: make([]float64, d.Len())}
}

// Clone returns a deep copy.
func (f *Float) Clone() *Float {
	o := NewFloat(f.Dims)
	copy(o.Data, f.Data)
	return o
}

// NonZero returns the boolean mask of voxels with a strictly positive value.
func (f *Float) NonZero() *Bool {
	o := NewBool(f.Dims)
	for i, v := range f.Data {
		o.Data[i] = v > 0
	}
	return o
}

// Int is an integer grid, used for label fields. Label 0 is background.
type Int struct {
	Dims Dims
	Data []int
}

// NewInt allocates a zero-filled label grid.
func NewInt(d Dims) *Int {
	return &Int{Dims: d.Clone(), Data: make([]int, d.Len())}
}

// Clone returns a deep copy.
func (m *Int) Clone() *Int {
	o := NewInt(m.Dims)
	copy(o.Data, m.Data)
	return o
}

// Max returns the largest label present.
func (m *Int) Max() int {
	max := 0
	for _, v := range m.Data {
		if v > max {
			max = v
		}
	}
	return max
}

// NonZero returns the boolean mask of voxels with a nonzero label.
func (m *Int) NonZero() *Bool {
	o := NewBool(m.Dims)
	for i, v := range m.Data {
		o.Data[i] = v != 0
	}
	return o
}
