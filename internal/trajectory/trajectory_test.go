package trajectory

import (
	"math"
	"testing"

	"github.com/htsengine/jbonsai/internal/gv"
	"github.com/htsengine/jbonsai/internal/meanvari"
	"github.com/htsengine/jbonsai/internal/model"
)

func segment(mean float64, msdWeight float64) model.Segment {
	return model.Segment{
		Params:    []meanvari.MeanVari{{Mean: mean, Vari: 1}},
		MSDWeight: msdWeight,
	}
}

func TestGenerateRecoversMeansWithoutGV(t *testing.T) {
	windows := model.NewWindows([]model.Window{model.NewWindow([]float64{1})})
	segments := []model.Segment{segment(2, 1), segment(4, 1)}
	durations := []int{1, 1}

	out := Generate(windows, segments, durations, 1, 0.5, nil, 0, nil, 0)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if math.Abs(out[0][0]-2) > 1e-6 {
		t.Errorf("out[0][0] = %v, want ~2", out[0][0])
	}
	if math.Abs(out[1][0]-4) > 1e-6 {
		t.Errorf("out[1][0] = %v, want ~4", out[1][0])
	}
}

func TestGenerateMarksUnvoicedFramesNODATA(t *testing.T) {
	windows := model.NewWindows([]model.Window{model.NewWindow([]float64{1})})
	// MSD weight 0 -> unvoiced, below any positive threshold.
	segments := []model.Segment{segment(2, 1), segment(4, 0)}
	durations := []int{1, 1}

	out := Generate(windows, segments, durations, 1, 0.5, nil, 0, nil, 0)
	if out[1][0] != model.NODATA {
		t.Fatalf("out[1][0] = %v, want model.NODATA for an unvoiced frame", out[1][0])
	}
	if out[0][0] == model.NODATA {
		t.Fatalf("out[0][0] should not be NODATA, the frame is voiced")
	}
}

func TestGenerateWithGVTarget(t *testing.T) {
	windows := model.NewWindows([]model.Window{model.NewWindow([]float64{1})})
	segments := []model.Segment{segment(0, 1), segment(2, 1), segment(4, 1), segment(6, 1)}
	durations := []int{1, 1, 1, 1}

	targets := []gv.Parameter{{Mean: 3, Vari: 10}}
	out := Generate(windows, segments, durations, 1, 0.5, targets, 1, nil, 0)
	if len(out) != 4 {
		t.Fatalf("len(out) = %d, want 4", len(out))
	}
	for i, row := range out {
		if math.IsNaN(row[0]) || math.IsInf(row[0], 0) {
			t.Fatalf("out[%d][0] = %v, not finite", i, row[0])
		}
	}
}
