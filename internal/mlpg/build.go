package mlpg

import (
	"github.com/htsengine/jbonsai/internal/mask"
	"github.com/htsengine/jbonsai/internal/meanvari"
	"github.com/htsengine/jbonsai/internal/model"
)

// ExpandDurations replicates each item items[i] durations[i] times, in
// order, producing the full per-frame sequence (spec.md §3 StreamParameter
// "after duration expansion the per-frame sequence has length T").
func ExpandDurations[T any](items []T, durations []int) []T {
	total := 0
	for _, d := range durations {
		total += d
	}
	out := make([]T, 0, total)
	for i, item := range items {
		for k := 0; k < durations[i]; k++ {
			out = append(out, item)
		}
	}
	return out
}

// MSDMask derives the per-frame voiced/valid mask from duration-expanded
// MSD weights: a frame is voiced iff its weight >= threshold. threshold=0
// marks every frame voiced; because the comparison is inclusive,
// threshold=1 still marks frames whose weight is exactly 1 voiced, and
// only a threshold above 1 marks every frame unvoiced.
func MSDMask(weights []float64, threshold float64) mask.Mask {
	bits := make([]bool, len(weights))
	for i, w := range weights {
		bits[i] = w >= threshold
	}
	return mask.New(bits)
}

// windowedSequence builds, for one output dimension and one window, the
// duration-expanded, boundary-muted, mask-filtered (mean, ivar) sequence
// described in spec.md §4.D's "Normal equations" and
// original_source/src/mlpg_adjust/mod.rs.
func windowedSequence(
	segments []model.Segment,
	durations []int,
	vectorLength, dim, windowIndex int,
	window model.Window,
	boundaries []mask.BoundaryDistance,
	m mask.Mask,
) []meanvari.MeanVari {
	col := vectorLength*windowIndex + dim
	perSegment := make([]meanvari.MeanVari, len(segments))
	for i, seg := range segments {
		perSegment[i] = seg.Params[col].WithIvar()
	}
	expanded := ExpandDurations(perSegment, durations)

	out := make([]meanvari.MeanVari, 0, m.CountTrue())
	left, right := window.LeftWidth(), window.RightWidth()
	for t, mv := range expanded {
		if !m[t] {
			continue
		}
		bd := boundaries[t]
		crossesBoundary := bd.Left < left || bd.Right < right
		if crossesBoundary && windowIndex != 0 {
			mv = mv.Zero()
		}
		out = append(out, mv)
	}
	return out
}

// BuildNormalEquations constructs the banded WᵀUW matrix and WᵀUμ vector
// for one output dimension, over all windows, per spec.md §4.D.
func BuildNormalEquations(
	windows model.Windows,
	segments []model.Segment,
	durations []int,
	vectorLength, dim int,
	m mask.Mask,
) (*Band, []float64) {
	boundaries := m.BoundaryDistances()
	n := m.CountTrue()
	bandwidth := windows.MaxWidth()

	band := NewBand(n, bandwidth)
	wum := make([]float64, n)

	for w := 0; w < windows.Len(); w++ {
		window := windows.At(w)
		seq := windowedSequence(segments, durations, vectorLength, dim, w, window, boundaries, m)
		left := window.LeftWidth()
		width := window.Width()

		for t, mv := range seq {
			ivar := mv.Vari
			if ivar == 0 {
				continue
			}
			mean := mv.Mean
			for i := 0; i < width; i++ {
				offset1 := i - left
				c1 := t + offset1
				if c1 < 0 || c1 >= n {
					continue
				}
				coeff1 := window.Coefficients[i]
				wum[c1] += ivar * mean * coeff1
				for j := 0; j < width; j++ {
					offset2 := j - left
					c2 := t + offset2
					if c2 < 0 || c2 >= n || c2 > c1 {
						continue
					}
					coeff2 := window.Coefficients[j]
					band.AddAt(c1, c2, ivar*coeff1*coeff2)
				}
			}
		}
	}

	return band, wum
}
