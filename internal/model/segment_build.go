package model

import "github.com/htsengine/jbonsai/internal/meanvari"

// BuildSegment converts one leaf's flat (mean, variance) parameter block
// — as returned by PDFBlock.Leaf, window-major with a length-vectorLength
// mean run followed by a length-vectorLength variance run per window —
// into the window-major, dimension-fastest Segment.Params layout the MLPG
// solver consumes (spec.md §3 "StreamParameter").
func BuildSegment(params []float64, vectorLength, numWindows int, msdWeight float64) Segment {
	out := make([]meanvari.MeanVari, vectorLength*numWindows)
	for w := 0; w < numWindows; w++ {
		base := w * vectorLength * 2
		for d := 0; d < vectorLength; d++ {
			out[vectorLength*w+d] = meanvari.MeanVari{
				Mean: params[base+d],
				Vari: params[base+vectorLength+d],
			}
		}
	}
	return Segment{Params: out, MSDWeight: msdWeight}
}
