package vocoder

// mglsaSection is one stage of the MGLSA all-pass ladder (spec.md §4.H
// "dff"): a single delay line, distinct in both shape and recursion from
// MLSA's df1/df2 state (spec.md §9 "tagged variant with two state
// shapes") — it is not a firState and does not reuse the fir kernel.
//
// Grounded on original_source/src/vocoder/mglsa.rs's
// MelGeneralizedLogSpectrumApproximation::dff.
type mglsaSection struct {
	d []float64 // length order+1, matching the coefficients vector
}

func newMGLSASection(n int) *mglsaSection {
	return &mglsaSection{d: make([]float64, n)}
}

func (s *mglsaSection) reset() {
	for i := range s.d {
		s.d[i] = 0
	}
}

// dff applies one stage of the generalized log spectrum approximation
// ladder to x in place, driven by coefficients (the order+1 generalized
// cepstrum vector for the current interpolated frame); coefficients[0] is
// never read, matching the reference (the gain term is applied separately
// as an excitation energy scale, spec.md §4.I-NEW).
func (s *mglsaSection) dff(x *float64, alpha float64, coefficients []float64) {
	d := s.d
	aa := 1 - alpha*alpha

	y := d[0] * coefficients[1]
	for i := 1; i < len(coefficients)-1; i++ {
		d[i] += alpha * (d[i+1] - d[i-1])
		y += d[i] * coefficients[i+1]
	}
	*x -= y

	for i := len(coefficients) - 1; i >= 1; i-- {
		d[i] = d[i-1]
	}
	d[0] = alpha*d[0] + aa*(*x)
}

// mglsaFilter is the stage>0 generalized-log-spectrum synthesis filter: a
// ladder of `stage` dff sections, each driven by the same gamma=-1/stage
// gain-normalized generalized cepstrum coefficients in sequence (no Padé
// approximation needed since the generalized all-pole form is already a
// finite cascade, and the reference applies no additional per-section
// scaling beyond what gnorm/ignorm already folded into the coefficients).
//
// Grounded on original_source/src/vocoder/mglsa.rs and stage.rs's
// Stage::NonZero construction.
type mglsaFilter struct {
	order  int
	alpha  float64
	stage  int
	gamma  float64
	ladder []*mglsaSection
}

func newMGLSA(stage, order int, alpha float64) *mglsaFilter {
	ladder := make([]*mglsaSection, stage)
	for i := range ladder {
		ladder[i] = newMGLSASection(order + 1)
	}
	return &mglsaFilter{
		order:  order,
		alpha:  alpha,
		stage:  stage,
		gamma:  -1.0 / float64(stage),
		ladder: ladder,
	}
}

func (f *mglsaFilter) Reset() {
	for _, s := range f.ladder {
		s.reset()
	}
}

// Synthesize applies one sample of the MGLSA ladder. coefficients is the
// gain-normalized generalized cepstrum (length order+1) for the current
// interpolated frame.
func (f *mglsaFilter) Synthesize(excitation float64, coefficients []float64) float64 {
	x := excitation
	for _, section := range f.ladder {
		section.dff(&x, f.alpha, coefficients)
	}
	return x
}
