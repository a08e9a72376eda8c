package vocoder

import (
	"math"
	"testing"
)

func TestFirScalarBatchedAgree(t *testing.T) {
	coefficients := make([]float64, 13)
	for i := range coefficients {
		coefficients[i] = 0.1 * float64(i%5-2)
	}

	scalar := newFirState(13)
	batched := newFirState(13)

	alpha := 0.42
	inputs := []float64{0.5, -0.3, 0.8, 0.0, -1.2, 2.0, -0.01}

	for _, x := range inputs {
		ys := scalar.stepScalar(x, alpha, coefficients)
		yb := batched.stepBatched(x, alpha, coefficients)
		if math.Abs(ys-yb) > 1e-12 {
			t.Fatalf("scalar/batched mismatch: scalar=%v batched=%v diff=%v", ys, yb, math.Abs(ys-yb))
		}
		for i := range scalar.d {
			if math.Abs(scalar.d[i]-batched.d[i]) > 1e-12 {
				t.Fatalf("state mismatch at %d: scalar=%v batched=%v", i, scalar.d[i], batched.d[i])
			}
		}
	}
}

func TestFirZeroCoefficientsFinite(t *testing.T) {
	s := newFirState(4)
	out := s.stepScalar(1.0, 0.35, make([]float64, 4))
	if math.IsNaN(out) || math.IsInf(out, 0) {
		t.Fatalf("unexpected non-finite output: %v", out)
	}
}

// TestFirZeroInputZeroStateIsZero is the fir-kernel half of spec.md §8
// invariant 6 ("MLSA and MGLSA preserve zero input at zero state"): a
// freshly-reset delay line fed x=0 must produce y=0 regardless of the
// coefficient vector, since d[0]=x=0 and every other position was already
// 0, so the whole updated delay line is 0 and the coefficient-weighted sum
// over it is 0 too.
func TestFirZeroInputZeroStateIsZero(t *testing.T) {
	coefficients := []float64{0.3, -0.2, 0.5, 0.1, -0.4}
	scalar := newFirState(5)
	if y := scalar.stepScalar(0, 0.42, coefficients); y != 0 {
		t.Fatalf("stepScalar(0, ...) on zero state = %v, want 0", y)
	}
	batched := newFirState(5)
	if y := batched.stepBatched(0, 0.42, coefficients); y != 0 {
		t.Fatalf("stepBatched(0, ...) on zero state = %v, want 0", y)
	}
}
