package excite

import (
	"context"
	"math"

	"github.com/htsengine/jbonsai/internal/coef"
	"github.com/htsengine/jbonsai/internal/vocoder"
)

// Frame is one synthesis frame's per-stream parameters, already pulled out
// of the dense trajectory matrices: spectral coefficients (gnorm-denormalized
// gain form, ready for mc2b/B2En), log F0 (or NODATA for unvoiced), and the
// voicing flag.
type Frame struct {
	Spectrum []float64
	LogF0    float64
	Voiced   bool
}

// Synthesizer drives one utterance's sample-by-sample synthesis loop:
// pulse/noise excitation, linear interpolation of the spectral envelope
// between consecutive frames, energy scaling (exp(c[0]) for stage 0,
// B2En-derived for stage>0, spec.md §4.I-NEW), and a vocoder.Filter stage.
//
// Grounded on cbegin-mmlfm-go's internal/fm/engine.go per-sample render
// loop: a tight inner loop over samplesPerFrame driven by per-frame state
// computed once outside it.
type Synthesizer struct {
	sampleRate  int
	framePeriod int
	alpha       float64
	stage       int
	irLength    int
	pulse       *Pulse
	noise       *Noise
	filter      vocoder.Filter
}

// NewSynthesizer constructs a per-utterance synthesizer. seed and dialect
// configure the unvoiced noise source (spec.md §9 "no global mutable
// state": every utterance's Synthesizer owns independent generator
// state).
func NewSynthesizer(sampleRate, framePeriod, order, stage int, alpha float64, irLength int, seed uint64, dialect UnvoicedNoise) *Synthesizer {
	return &Synthesizer{
		sampleRate:  sampleRate,
		framePeriod: framePeriod,
		alpha:       alpha,
		stage:       stage,
		irLength:    irLength,
		pulse:       NewPulse(sampleRate),
		noise:       NewNoise(seed, dialect),
		filter:      vocoder.New(stage, order, alpha),
	}
}

// Synthesize renders frames to PCM, checking ctx for cancellation once per
// frame boundary (spec.md §5 "cooperative cancellation signal checked at
// frame boundaries"). On cancellation it returns the samples rendered so
// far along with ctx.Err().
func (s *Synthesizer) Synthesize(ctx context.Context, frames []Frame) ([]float64, error) {
	if len(frames) == 0 {
		return nil, nil
	}

	out := make([]float64, 0, len(frames)*s.framePeriod)
	wasVoiced := false

	for i, f := range frames {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}

		next := f
		if i+1 < len(frames) {
			next = frames[i+1]
		}

		coeffs := s.frameCoefficients(f)
		nextCoeffs := s.frameCoefficients(next)
		gain := s.energyScale(f.Spectrum)
		nextGain := s.energyScale(next.Spectrum)

		if f.Voiced && !wasVoiced {
			s.pulse.Reset()
		}
		wasVoiced = f.Voiced

		f0 := 0.0
		if f.Voiced {
			f0 = math.Exp(f.LogF0)
		}

		for t := 0; t < s.framePeriod; t++ {
			frac := float64(t) / float64(s.framePeriod)
			interp := interpolate(coeffs, nextCoeffs, frac)

			var excitation float64
			if f.Voiced {
				excitation = s.pulse.Next(f0)
			} else {
				excitation = s.noise.Next()
			}
			excitation *= gain + frac*(nextGain-gain)

			// A frame pair with no spectral coefficients is a flat
			// spectrum: the excitation passes through unfiltered.
			if len(interp) == 0 {
				out = append(out, excitation)
				continue
			}
			out = append(out, s.filter.Synthesize(excitation, interp))
		}
	}

	return out, nil
}

// frameCoefficients converts a frame's gain-normalized spectral envelope
// into the representation the configured filter stage consumes: mc2b'd
// coefficients for stage 0 (MLSA), ignorm'd generalized cepstrum directly
// for stage>0 (MGLSA), per spec.md §4.F/§4.H.
func (s *Synthesizer) frameCoefficients(f Frame) []float64 {
	if len(f.Spectrum) == 0 {
		return nil
	}
	if s.stage <= 0 {
		return coef.MC2B(f.Spectrum, s.alpha)
	}
	gamma := -1.0 / float64(s.stage)
	return coef.Ignorm(f.Spectrum, gamma)
}

// energyScale returns the per-frame excitation amplitude scale derived from
// the spectral envelope's gain term (spec.md §4.I-NEW). Stage 0 (MLSA) reads
// the mel-cepstrum gain directly as exp(c[0]); stage>0 (MGLSA) instead goes
// through B2En, the filter's actual minimum-phase impulse-response energy,
// since a generalized cepstrum's c[0] is not a plain log-gain term once
// gnorm has folded gamma into it.
func (s *Synthesizer) energyScale(spectrum []float64) float64 {
	if len(spectrum) == 0 {
		return 1
	}
	if s.stage <= 0 {
		return math.Exp(spectrum[0])
	}
	b := coef.MC2B(spectrum, s.alpha)
	return math.Sqrt(coef.B2En(b, s.alpha, s.irLength))
}

func interpolate(a, b []float64, frac float64) []float64 {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 || len(b) != len(a) {
		return a
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + frac*(b[i]-a[i])
	}
	return out
}
