// Grounded on original_source/src/model/stream_parameter.rs and
// src/constants.rs.
package model

import (
	"github.com/htsengine/jbonsai/internal/meanvari"
)

const (
	maxF0 = 20000.0
	minF0 = 20.0

	// MaxLF0 is ln(MaxF0).
	MaxLF0 = 9.903487552536127
	// MinLF0 is ln(MinF0).
	MinLF0 = 2.995732273553991

	// HalfTone is ln(2)/12, the lf0 shift per semitone.
	HalfTone = 0.05776226504666211

	// NODATA is the sentinel marking an undefined trajectory sample
	// (typically an unvoiced lf0 frame).
	NODATA = -1e10
)

// Segment is one state/phoneme-duration segment's per-window Gaussian
// parameters plus its MSD (multi-space distribution) voicing weight.
type Segment struct {
	// Params is window-major, dimension-fastest: Params[vectorLength*w+d]
	// is the MeanVari for window w, dimension d.
	Params   []meanvari.MeanVari
	MSDWeight float64
}

// StreamParameter is the ordered sequence of segments making up one output
// stream (e.g. spectrum, lf0) of one utterance, before duration expansion.
type StreamParameter struct {
	Segments []Segment
}

// ApplyAdditionalHalfTone shifts every segment's dimension-0 mean (the lf0
// mean) by additionalHalfTone*HalfTone, clamped to [MinLF0, MaxLF0]. A
// no-op shift is skipped entirely, matching the reference's early return.
func (sp *StreamParameter) ApplyAdditionalHalfTone(additionalHalfTone float64) {
	if additionalHalfTone == 0 {
		return
	}
	shift := additionalHalfTone * HalfTone
	for i := range sp.Segments {
		p := &sp.Segments[i].Params[0]
		v := p.Mean + shift
		if v < MinLF0 {
			v = MinLF0
		} else if v > MaxLF0 {
			v = MaxLF0
		}
		p.Mean = v
	}
}
