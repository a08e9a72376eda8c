package wavio

import "testing"

func TestToInt16Clamps(t *testing.T) {
	cases := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{40000, 32767},
		{-40000, -32768},
		{1.4, 1},
		{2.5, 2}, // round-to-even
	}
	for _, c := range cases {
		if got := ToInt16(c.in); got != c.want {
			t.Errorf("ToInt16(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestToInt16SlicePreservesLength(t *testing.T) {
	in := []float64{0, 1, -1, 100000}
	out := ToInt16Slice(in)
	if len(out) != len(in) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(in))
	}
	if out[3] != 32767 {
		t.Errorf("out[3] = %v, want 32767", out[3])
	}
}
