package vocoder

// firState is the per-stage delay line behind MLSA's df2 Padé cascade
// (spec.md §4.G): on each call the incoming sample replaces d[0], a carry
// (rem, starting at 0) is threaded across every position via the 2x2
// linear map
//
//	d[i]'  = alpha*d[i] + rem
//	rem'   = iaa*d[i]   - alpha*rem
//
// where iaa = 1-alpha^2, and the filter's output is the coefficient-weighted
// sum over the *updated* delay line, d[2:]. Grounded on
// original_source/src/vocoder/mlsa/fir.rs (scalar, Df2::fir) and
// fir_simd.rs (lane-batched); both are ported here, selected at
// construction by hasBatchedLanes (stage.go), and required to agree to
// within 1e-12 per sample (spec.md §9).
type firState struct {
	d []float64
}

func newFirState(n int) *firState {
	return &firState{d: make([]float64, n)}
}

func (f *firState) reset() {
	for i := range f.d {
		f.d[i] = 0
	}
}

// stepScalar applies one fir recursion: x replaces d[0], the carry starts
// at 0 and is threaded position by position, and the output is the
// coefficient-weighted sum over d[2:] of the updated delay line.
func (f *firState) stepScalar(x float64, alpha float64, coefficients []float64) float64 {
	d := f.d
	d[0] = x

	iaa := 1 - alpha*alpha
	rem := 0.0
	for i := range d {
		d[i], rem = alpha*d[i]+rem, iaa*d[i]-alpha*rem
	}

	y := 0.0
	for i := 2; i < len(d); i++ {
		y += d[i] * coefficients[i]
	}
	return y
}

// stepBatched is mathematically identical to stepScalar, computed 4
// positions at a time via the closed-form composition of the 2x2 map
// (derived directly from the per-step recursion above, matching the
// structure of fir_simd.rs's AlphaMatrix without requiring actual machine
// SIMD intrinsics, which Go's standard toolchain does not expose).
func (f *firState) stepBatched(x float64, alpha float64, coefficients []float64) float64 {
	d := f.d
	d[0] = x

	iaa := 1 - alpha*alpha
	a := alpha
	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a

	n := len(d)
	rem := 0.0
	i := 0
	for ; i+4 <= n; i += 4 {
		d0 := d[i]
		d1 := d[i+1]
		d2 := d[i+2]
		d3 := d[i+3]
		r0 := rem

		nd0 := a*d0 + r0
		r1 := iaa*d0 - a*r0

		nd1 := a*d1 + r1
		r2 := iaa*d1 - a*iaa*d0 + a2*r0

		nd2 := a*d2 + r2
		r3 := iaa*d2 - a*iaa*d1 + a2*iaa*d0 - a3*r0

		nd3 := a*d3 + r3
		r4 := iaa*d3 - a*iaa*d2 + a2*iaa*d1 - a3*iaa*d0 + a4*r0

		d[i] = nd0
		d[i+1] = nd1
		d[i+2] = nd2
		d[i+3] = nd3
		rem = r4
	}
	for ; i < n; i++ {
		newD := a*d[i] + rem
		newRem := iaa*d[i] - a*rem
		d[i] = newD
		rem = newRem
	}

	y := 0.0
	for i := 2; i < n; i++ {
		y += d[i] * coefficients[i]
	}
	return y
}
