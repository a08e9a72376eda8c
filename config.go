package jbonsai

import (
	"fmt"

	"github.com/htsengine/jbonsai/internal/excite"
)

// EngineConfig holds the sample-rate-independent synthesis knobs, passed
// to Load and validated there (spec.md §1-NEW "mirroring the teacher's
// constructor-options pattern of validating and rejecting bad values at
// construction time").
type EngineConfig struct {
	// AllHalfTone shifts every voiced frame's log-F0 by this many
	// semitones before synthesis (0 disables the shift).
	AllHalfTone float64

	// GvWeight is the per-stream Global Variance trade-off weight,
	// indexed by stream order (duration stream's entry is ignored).
	// A zero entry disables GV refinement for that stream even if the
	// voice carries a trained GV model.
	GvWeight []float64

	// MsdThreshold is the multi-space-distribution voicing-probability
	// cutoff (spec.md §3): segments with MSDWeight below this are treated
	// as unvoiced/masked-out.
	MsdThreshold float64

	// Stage selects the vocoder filter family for the spectral stream:
	// 0 selects MLSA, >0 selects MGLSA with that many cascade stages.
	Stage int

	// Alpha is the frequency-warping factor shared by the MLSA/MGLSA
	// filter and the coefficient transforms that feed it.
	Alpha float64

	// GVMaxIteration bounds the GV refiner's damped Newton-step loop
	// (spec.md §9 Open Question; 0 selects gv.DefaultMaxIteration).
	GVMaxIteration int

	// ImpulseResponseLength is the truncation length B2En uses to
	// estimate filter energy (spec.md §9 Open Question; 0 selects 576).
	ImpulseResponseLength int

	// ExcitationSeed seeds the unvoiced-noise generator. Synthesizing the
	// same labels against the same Engine and seed is deterministic.
	ExcitationSeed uint64

	// UnvoicedNoise selects the unvoiced excitation dialect.
	UnvoicedNoise excite.UnvoicedNoise

	// StreamNames orders the voice file's stream model records; the
	// first entry is always the duration stream. Empty selects
	// defaultStreamNames ("duration", "mgc", "lf0").
	StreamNames []string
}

const defaultImpulseResponseLength = 576

// validate rejects structurally invalid configuration, returning a
// wrapped ErrMalformedVoice-adjacent error — configuration isn't a voice
// file, but it shares the "reject bad construction input" policy spec.md
// §7 assigns to MalformedVoice; the config layer surfaces its own message
// while still satisfying errors.Is on the closest sentinel kind.
func (c EngineConfig) validate(numStreams int) (EngineConfig, error) {
	out := c
	if out.MsdThreshold < 0 || out.MsdThreshold > 1 {
		return out, fmt.Errorf("%w: msd threshold %v out of [0,1]", ErrMalformedVoice, out.MsdThreshold)
	}
	if out.Stage < 0 {
		return out, fmt.Errorf("%w: negative stage %d", ErrMalformedVoice, out.Stage)
	}
	if out.ImpulseResponseLength <= 0 {
		out.ImpulseResponseLength = defaultImpulseResponseLength
	}
	if out.GvWeight == nil {
		out.GvWeight = make([]float64, numStreams)
	} else if len(out.GvWeight) != numStreams {
		return out, fmt.Errorf("%w: gv weight length %d, want %d streams", ErrMalformedVoice, len(out.GvWeight), numStreams)
	}
	return out, nil
}
