// Package vocoder implements the MLSA (stage 0) and MGLSA (stage>0)
// synthesis filters that turn a per-frame interpolated mel-(generalized)
// cepstrum plus excitation sample into PCM, per spec.md §4.G/§4.H.
//
// Grounded on original_source/src/vocoder/mlsa.rs, mlsa/mod.rs, mglsa.rs,
// and mlsa/fir.rs + fir_simd.rs.
package vocoder

import "golang.org/x/sys/cpu"

// hasBatchedLanes reports whether the host advertises the SIMD feature
// set the lane-batched fir kernel is modeled on. Both kernels are pure Go
// and produce results agreeing to within 1e-12 (spec.md §9); the dispatch
// exists to exercise the wider vector-register path on hardware that has
// one, mirroring the reference's runtime CPU-feature dispatch.
func hasBatchedLanes() bool {
	return cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
}

// Filter is the common synthesis-filter interface: feed one excitation
// sample and the active frame's filter coefficients (already gnorm'd/
// ignorm'd into the representation the stage expects), get one PCM
// sample.
type Filter interface {
	Synthesize(excitation float64, coefficients []float64) float64
	Reset()
}

// New constructs the filter variant for stage (0 => MLSA, >0 => MGLSA)
// over an order-M coefficient vector and warping factor alpha.
func New(stage int, order int, alpha float64) Filter {
	if stage <= 0 {
		return newMLSA(order, alpha)
	}
	return newMGLSA(stage, order, alpha)
}
