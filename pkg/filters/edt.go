package filters

import (
	"math"

	"porenet/pkg/voxel"
)

// EDT computes the exact Euclidean distance transform of a phase mask: each
// true (void) voxel receives its distance to the nearest false (solid)
// voxel, and solid voxels receive 0. An image with no solid voxels at all
// yields +Inf everywhere, matching the usual convention.
//
// Degenerate axes of extent 1 are squeezed away before the transform and
// restored afterwards, so a one-voxel-thick 3D image transforms identically
// to its 2D cross-section. The implementation is the standard separable
// squared-distance transform built from per-axis lower envelopes of
// parabolas (Felzenszwalb & Huttenlocher).
func EDT(im *voxel.Bool) *voxel.Float {
	out := voxel.NewFloat(im.Dims)
	for i, v := range im.Data {
		if v {
			out.Data[i] = math.Inf(1)
		}
	}

	// The flat layout is unchanged by squeezing, so degenerate axes are
	// handled by running the sweeps over the squeezed dims.
	dims := im.Dims.Squeeze()
	f := make([]float64, 0)
	for axis := 0; axis < dims.Rank(); axis++ {
		forEachLine(dims, axis, func(base, stride, n int) {
			if cap(f) < n {
				f = make([]float64, n)
			}
			f = f[:n]
			for i := 0; i < n; i++ {
				f[i] = out.Data[base+i*stride]
			}
			envelope(f)
			for i := 0; i < n; i++ {
				out.Data[base+i*stride] = f[i]
			}
		})
	}

	for i, v := range out.Data {
		out.Data[i] = math.Sqrt(v)
	}
	return out
}

// envelope replaces f, a line of squared distances, with the lower envelope
// of the parabolas rooted at each finite sample: f[i] = min_j (i-j)^2 + f[j].
// Samples at +Inf contribute no parabola; a line with no finite sample is
// left untouched.
func envelope(f []float64) {
	n := len(f)
	v := make([]int, n)       // roots of the parabolas on the envelope
	z := make([]float64, n+1) // breakpoints between adjacent parabolas
	d := make([]float64, n)

	k := -1
	for q := 0; q < n; q++ {
		if math.IsInf(f[q], 1) {
			continue
		}
		var s float64
		for k >= 0 {
			p := v[k]
			s = ((f[q] + float64(q*q)) - (f[p] + float64(p*p))) / float64(2*(q-p))
			if s > z[k] {
				break
			}
			k--
		}
		if k < 0 {
			k = 0
			v[0] = q
			z[0] = math.Inf(-1)
		} else {
			k++
			v[k] = q
			z[k] = s
		}
		z[k+1] = math.Inf(1)
	}

	if k < 0 {
		return
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		p := v[k]
		diff := float64(q - p)
		d[q] = diff*diff + f[p]
	}
	copy(f, d)
}
