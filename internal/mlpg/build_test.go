package mlpg

import (
	"reflect"
	"testing"

	"github.com/htsengine/jbonsai/internal/mask"
	"github.com/htsengine/jbonsai/internal/meanvari"
	"github.com/htsengine/jbonsai/internal/model"
)

func TestExpandDurations(t *testing.T) {
	items := []string{"a", "b", "c"}
	durations := []int{2, 0, 3}
	got := ExpandDurations(items, durations)
	want := []string{"a", "a", "c", "c", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExpandDurations = %v, want %v", got, want)
	}
}

func TestMSDMaskThresholds(t *testing.T) {
	weights := []float64{0.9, 0.4, 0.5}
	if got := MSDMask(weights, 0.5); !reflect.DeepEqual([]bool(got), []bool{true, false, true}) {
		t.Fatalf("MSDMask = %v", got)
	}
	if got := MSDMask(weights, 0); !reflect.DeepEqual([]bool(got), []bool{true, true, true}) {
		t.Fatalf("MSDMask(threshold=0) = %v, want all true", got)
	}
	if got := MSDMask(weights, 1.1); !reflect.DeepEqual([]bool(got), []bool{false, false, false}) {
		t.Fatalf("MSDMask(threshold=1.1) = %v, want all false", got)
	}
}

func segmentWithMean(mean float64) model.Segment {
	return model.Segment{
		Params:    []meanvari.MeanVari{{Mean: mean, Vari: 1}},
		MSDWeight: 1,
	}
}

func TestBuildNormalEquationsSingleStaticWindow(t *testing.T) {
	windows := model.NewWindows([]model.Window{model.NewWindow([]float64{1})})
	segments := []model.Segment{segmentWithMean(2), segmentWithMean(4)}
	durations := []int{1, 1}
	m := mask.New([]bool{true, true})

	band, wum := BuildNormalEquations(windows, segments, durations, 1, 0, m)
	if band.N() != 2 {
		t.Fatalf("band.N() = %d, want 2", band.N())
	}
	// Identity window, ivar=1: A is the 2x2 identity, Wum = mean.
	if band.At(0, 0) != 1 || band.At(1, 1) != 1 {
		t.Fatalf("diagonal = %v %v, want 1 1", band.At(0, 0), band.At(1, 1))
	}
	if wum[0] != 2 || wum[1] != 4 {
		t.Fatalf("wum = %v, want [2 4]", wum)
	}
}
