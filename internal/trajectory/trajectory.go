// Package trajectory drives one stream's MLPG solve and optional GV
// refinement across all output dimensions, producing the dense T x
// vectorLength matrix described in spec.md §3 "Trajectory".
//
// Grounded on original_source/src/mlpg_adjust/mod.rs's MlpgAdjust::create,
// which is the per-stream orchestration this package ports.
package trajectory

import (
	"github.com/htsengine/jbonsai/internal/gv"
	"github.com/htsengine/jbonsai/internal/mask"
	"github.com/htsengine/jbonsai/internal/mlpg"
	"github.com/htsengine/jbonsai/internal/model"
)

// GVSwitch is an optional per-segment (pre-duration-expansion) boolean
// controlling whether a segment contributes to the GV term.
type GVSwitch []bool

// Generate produces the dense T x vectorLength trajectory for one stream,
// given its per-segment parameters and the per-segment durations they are
// expanded by, the stream's regression windows,
// its MSD threshold, and an optional per-dimension GV model.
func Generate(
	windows model.Windows,
	segments []model.Segment,
	durations []int,
	vectorLength int,
	msdThreshold float64,
	gvTargets []gv.Parameter, // len == vectorLength, zero Vari means "no GV for this dim"
	gvWeight float64,
	gvSwitch GVSwitch, // per-segment, optional
	gvMaxIteration int,
) [][]float64 {
	weights := make([]float64, len(segments))
	for i, s := range segments {
		weights[i] = s.MSDWeight
	}
	expandedWeights := mlpg.ExpandDurations(weights, durations)
	m := mlpg.MSDMask(expandedWeights, msdThreshold)

	var expandedSwitch []bool
	if gvSwitch != nil {
		expandedSwitch = mlpg.ExpandDurations([]bool(gvSwitch), durations)
	}

	totalFrames := m.Len()
	out := make([][]float64, totalFrames)
	for t := range out {
		out[t] = make([]float64, vectorLength)
	}

	for dim := 0; dim < vectorLength; dim++ {
		result := mlpg.SolveDimension(windows, segments, durations, vectorLength, dim, m)

		x := result.X
		if gvTargets != nil && gvTargets[dim].Vari > 0 && len(x) > 0 {
			active := activeMask(m, expandedSwitch)
			x = gv.Refine(result.Band, result.Wum, x, active, gvTargets[dim], gvWeight, gvMaxIteration)
		}

		filled := mask.Fill(m, x, model.NODATA)
		for t, v := range filled {
			out[t][dim] = v
		}
	}

	return out
}

// activeMask restricts the optional per-frame GV-switch to the masked-in
// (T') domain, conjoined with the base mask itself.
func activeMask(m mask.Mask, expandedSwitch []bool) []bool {
	n := m.CountTrue()
	active := make([]bool, n)
	if expandedSwitch == nil {
		for i := range active {
			active[i] = true
		}
		return active
	}

	i := 0
	for t, ok := range m {
		if !ok {
			continue
		}
		active[i] = expandedSwitch[t]
		i++
	}
	return active
}
