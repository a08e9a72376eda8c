package vocoder

// mlsaFilter is the stage-0 (pure mel-cepstrum) MLSA synthesis filter: a
// first-order recursive all-pass stage (df1, driven only by
// coefficients[1]) cascaded with an N=pd+1 stage Padé-approximant cascade
// (df2, one independent fir-kernel delay line per stage), combined via the
// 21-entry Padé coefficient table.
//
// Grounded on original_source/src/vocoder/mlsa.rs's
// MelLogSpectrumApproximation::df1/df2 and mlsa/fir.rs's Df2::fir.
type mlsaFilter struct {
	order int
	alpha float64
	pd    int
	ppade []float64

	d11 []float64   // df1 state, length pd+1
	d12 []float64   // df1 state, length pd+1
	d21 []*firState // df2 per-stage fir delay lines, length pd
	d22 []float64   // df2 inter-stage carry, length pd+1

	batched bool
}

func newMLSA(order int, alpha float64) *mlsaFilter {
	pd := defaultPD
	base := pd * (pd + 1) / 2
	ppade := append([]float64(nil), pade[base:base+pd+1]...)

	d21 := make([]*firState, pd)
	for i := range d21 {
		d21[i] = newFirState(order + 1)
	}

	return &mlsaFilter{
		order:   order,
		alpha:   alpha,
		pd:      pd,
		ppade:   ppade,
		d11:     make([]float64, pd+1),
		d12:     make([]float64, pd+1),
		d21:     d21,
		d22:     make([]float64, pd+1),
		batched: hasBatchedLanes(),
	}
}

func (f *mlsaFilter) Reset() {
	for i := range f.d11 {
		f.d11[i] = 0
		f.d12[i] = 0
		f.d22[i] = 0
	}
	for _, s := range f.d21 {
		s.reset()
	}
}

// Synthesize applies one sample of the MLSA filter. coefficients is the
// mc2b-transformed coefficient vector (length order+1) for the current
// frame, already interpolated from the two bracketing model frames.
func (f *mlsaFilter) Synthesize(excitation float64, coefficients []float64) float64 {
	x := excitation
	f.df1(&x, coefficients)
	f.df2(&x, coefficients)
	return x
}

// df1 is the first-order recursive all-pass stage, driven only by
// coefficients[1]; it accumulates its own out across the pd-length loop
// and adds it into x exactly once.
func (f *mlsaFilter) df1(x *float64, coefficients []float64) {
	aa := 1 - f.alpha*f.alpha
	out := 0.0
	for i := f.pd; i >= 1; i-- {
		f.d11[i] = aa*f.d12[i-1] + f.alpha*f.d11[i]
		f.d12[i] = f.d11[i] * coefficients[1]
		v := f.d12[i] * f.ppade[i]
		if i&1 != 0 {
			*x += v
		} else {
			*x -= v
		}
		out += v
	}
	f.d12[0] = *x
	*x += out
}

// df2 is the Padé cascade: pd independent fir-kernel delay lines, each
// called once per sample and threaded through the d22 carry array, again
// accumulating its own out and adding it into x exactly once.
func (f *mlsaFilter) df2(x *float64, coefficients []float64) {
	out := 0.0
	for i := f.pd; i >= 1; i-- {
		var y float64
		if f.batched {
			y = f.d21[i-1].stepBatched(f.d22[i-1], f.alpha, coefficients)
		} else {
			y = f.d21[i-1].stepScalar(f.d22[i-1], f.alpha, coefficients)
		}
		f.d22[i] = y
		v := f.d22[i] * f.ppade[i]
		if i&1 != 0 {
			*x += v
		} else {
			*x -= v
		}
		out += v
	}
	f.d22[0] = *x
	*x += out
}
