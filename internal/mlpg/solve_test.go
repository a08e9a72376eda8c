package mlpg

import (
	"testing"

	"github.com/htsengine/jbonsai/internal/mask"
	"github.com/htsengine/jbonsai/internal/model"
)

func TestSolveDimensionEmptyMask(t *testing.T) {
	windows := model.NewWindows([]model.Window{model.NewWindow([]float64{1})})
	segments := []model.Segment{segmentWithMean(2)}
	m := mask.New([]bool{false})

	result := SolveDimension(windows, segments, []int{1}, 1, 0, m)
	if result.Band.N() != 0 {
		t.Fatalf("Band.N() = %d, want 0", result.Band.N())
	}
	if result.X != nil {
		t.Fatalf("X = %v, want nil", result.X)
	}
}

func TestSolveDimensionSingleFrameClosedForm(t *testing.T) {
	windows := model.NewWindows([]model.Window{model.NewWindow([]float64{1})})
	segments := []model.Segment{segmentWithMean(3)}
	m := mask.New([]bool{true})

	result := SolveDimension(windows, segments, []int{1}, 1, 0, m)
	if len(result.X) != 1 {
		t.Fatalf("len(X) = %d, want 1", len(result.X))
	}
	if got := result.X[0]; got < 2.999999 || got > 3.000001 {
		t.Fatalf("X[0] = %v, want ~3 (single-frame identity-window MLPG reduces to the trained mean)", got)
	}
}

func TestSolveDimensionTwoFramesRecoversMeans(t *testing.T) {
	windows := model.NewWindows([]model.Window{model.NewWindow([]float64{1})})
	segments := []model.Segment{segmentWithMean(2), segmentWithMean(4)}
	m := mask.New([]bool{true, true})

	result := SolveDimension(windows, segments, []int{1, 1}, 1, 0, m)
	if len(result.X) != 2 {
		t.Fatalf("len(X) = %d, want 2", len(result.X))
	}
	// A pure static (identity) window with no dynamic coupling decouples into
	// one equation per frame, so the MLPG solution is exactly each frame's
	// trained mean.
	if result.X[0] < 1.999999 || result.X[0] > 2.000001 {
		t.Errorf("X[0] = %v, want ~2", result.X[0])
	}
	if result.X[1] < 3.999999 || result.X[1] > 4.000001 {
		t.Errorf("X[1] = %v, want ~4", result.X[1])
	}
}
