// Package excite implements the pitch-synchronous excitation source
// (impulse train for voiced frames, seeded noise for unvoiced) and the
// per-sample synthesizer loop that drives a vocoder.Filter to PCM,
// per spec.md §4.I and the §4.I-NEW supplement.
//
// Grounded on cbegin-mmlfm-go's internal/wavetable/engine.go and
// internal/fm/engine.go per-sample loop idiom (phase accumulator plus
// a tight inner sample loop); the noise dialects are this port's own,
// using math/rand/v2 (no ecosystem RNG in the pack beats the stdlib PCG
// source for a seeded Gaussian/uniform generator, DESIGN.md).
package excite

import (
	"math"
	"math/rand/v2"
)

// UnvoicedNoise selects the unvoiced-frame noise dialect.
type UnvoicedNoise int

const (
	// GaussianNoise generates zero-mean, unit-variance noise via
	// Box-Muller. This is the default, matching common HTS engines.
	GaussianNoise UnvoicedNoise = iota
	// UniformNoise generates uniform noise in [-1, 1).
	UniformNoise
)

// Pulse is a pitch-synchronous impulse-train generator.
type Pulse struct {
	sampleRate int
	phase      float64
}

// NewPulse constructs a pulse generator for the given sample rate.
func NewPulse(sampleRate int) *Pulse {
	return &Pulse{sampleRate: sampleRate}
}

// Reset clears the phase accumulator (used when voicing resumes after a
// gap, so periods never straddle an unvoiced run).
func (p *Pulse) Reset() {
	p.phase = 0
}

// Next returns one excitation sample for a voiced frame at fundamental
// frequency f0Hz (must be > 0): a unit impulse, scaled by sqrt(period) to
// normalize energy across pitch periods, whenever the phase wraps, else 0.
func (p *Pulse) Next(f0Hz float64) float64 {
	period := float64(p.sampleRate) / f0Hz
	p.phase += 1.0
	if p.phase >= period {
		p.phase -= period
		if period <= 0 {
			return 0
		}
		return math.Sqrt(period)
	}
	return 0
}

// Noise is a seeded unvoiced-frame noise generator.
type Noise struct {
	rng     *rand.Rand
	dialect UnvoicedNoise
	haveZ1  bool
	z1      float64
}

// NewNoise constructs a seeded noise generator. seed makes synthesis
// reproducible across runs of the same Engine configuration (spec.md §9
// "no global mutable state": every *Synthesizer owns its own source).
func NewNoise(seed uint64, dialect UnvoicedNoise) *Noise {
	return &Noise{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		dialect: dialect,
	}
}

// Next returns one unvoiced excitation sample.
func (n *Noise) Next() float64 {
	switch n.dialect {
	case UniformNoise:
		return n.rng.Float64()*2 - 1
	default:
		return n.gaussian()
	}
}

// gaussian implements Box-Muller, caching the second of each generated
// pair so every call only needs one log/sqrt/cos|sin in expectation.
func (n *Noise) gaussian() float64 {
	if n.haveZ1 {
		n.haveZ1 = false
		return n.z1
	}
	u1 := n.rng.Float64()
	for u1 == 0 {
		u1 = n.rng.Float64()
	}
	u2 := n.rng.Float64()
	r := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2
	z0 := r * math.Cos(theta)
	n.z1 = r * math.Sin(theta)
	n.haveZ1 = true
	return z0
}
