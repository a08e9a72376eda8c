package mlpg

import (
	"github.com/htsengine/jbonsai/internal/mask"
	"github.com/htsengine/jbonsai/internal/model"
)

// DimensionResult is the per-dimension MLPG solve output: the normal
// equations (kept, unfactorized, for downstream GV refinement) and the
// masked-domain (length T') solution.
type DimensionResult struct {
	Band *Band
	Wum  []float64
	X    []float64
}

// SolveDimension solves the MLPG normal equations for one output
// dimension, per spec.md §4.D, including its documented edge cases:
// T'=0 returns an empty result, T'=1 reduces to the one-entry closed form
// via the same banded solve path (a 1x1 LDL^T factorization is exactly
// Wum[0]/D[0]).
func SolveDimension(
	windows model.Windows,
	segments []model.Segment,
	durations []int,
	vectorLength, dim int,
	m mask.Mask,
) DimensionResult {
	band, wum := BuildNormalEquations(windows, segments, durations, vectorLength, dim, m)
	if band.N() == 0 {
		return DimensionResult{Band: band, Wum: wum, X: nil}
	}

	factored := band.Clone()
	factored.Factorize()
	x := factored.Solve(wum)

	return DimensionResult{Band: band, Wum: wum, X: x}
}
