package model

import "testing"

func TestBuildSegmentLayout(t *testing.T) {
	// 2 dims, 2 windows: window0 means [1,2] vars [3,4], window1 means [5,6] vars [7,8].
	params := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	seg := BuildSegment(params, 2, 2, 0.75)

	if len(seg.Params) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(seg.Params))
	}
	if seg.Params[0].Mean != 1 || seg.Params[0].Vari != 3 {
		t.Errorf("window0 dim0 = %+v, want mean=1 vari=3", seg.Params[0])
	}
	if seg.Params[1].Mean != 2 || seg.Params[1].Vari != 4 {
		t.Errorf("window0 dim1 = %+v, want mean=2 vari=4", seg.Params[1])
	}
	if seg.Params[2].Mean != 5 || seg.Params[2].Vari != 7 {
		t.Errorf("window1 dim0 = %+v, want mean=5 vari=7", seg.Params[2])
	}
	if seg.Params[3].Mean != 6 || seg.Params[3].Vari != 8 {
		t.Errorf("window1 dim1 = %+v, want mean=6 vari=8", seg.Params[3])
	}
	if seg.MSDWeight != 0.75 {
		t.Errorf("MSDWeight = %v, want 0.75", seg.MSDWeight)
	}
}
