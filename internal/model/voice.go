// Grounded on original_source/src/model/voice/mod.rs and src/model/voice_set.rs.
package model

import "fmt"

// GlobalMetadata is the voice-wide configuration every voice in a set must
// agree on (spec.md §7 MetadataMismatch).
type GlobalMetadata struct {
	SamplingFrequency int
	FramePeriod       int
	NumStates         int
	HasGV             bool
}

// StreamMetadata is the per-stream configuration every voice must agree on.
type StreamMetadata struct {
	VectorLength int
	NumWindows   int
	IsMSD        bool
}

// StreamModel is one stream's (duration, spectrum, lf0, ...) trees, pdf
// block, regression windows, and optional GV model for one voice.
type StreamModel struct {
	Metadata StreamMetadata
	Windows  Windows
	Trees    []*Tree
	PDF      *PDFBlock
	GV       *GVModel
}

// GVModel holds one stream's per-dimension Global Variance targets.
type GVModel struct {
	Trees []*Tree
	PDF   *PDFBlock
}

// Voice is one immutable, fully-loaded voice model: global metadata plus
// one StreamModel per output stream (duration first, by convention).
type Voice struct {
	Metadata     GlobalMetadata
	StreamModels []StreamModel
	Questions    map[string]*Question
}

// VoiceSet is a non-empty collection of voices sharing identical metadata,
// safe for concurrent reads after construction (spec.md §5).
type VoiceSet struct {
	voices []*Voice
}

// NewVoiceSet validates and wraps voices. It returns an error (not a panic)
// on an empty slice or metadata mismatch, per spec.md §7.
func NewVoiceSet(voices []*Voice) (*VoiceSet, error) {
	if len(voices) == 0 {
		return nil, ErrEmptyVoiceSet
	}
	first := voices[0]
	for i, v := range voices[1:] {
		if v.Metadata != first.Metadata {
			return nil, fmt.Errorf("%w: voice %d differs from voice 0", ErrMetadataMismatch, i+1)
		}
		if len(v.StreamModels) != len(first.StreamModels) {
			return nil, fmt.Errorf("%w: voice %d has %d streams, voice 0 has %d", ErrMetadataMismatch, i+1, len(v.StreamModels), len(first.StreamModels))
		}
		for s := range v.StreamModels {
			if v.StreamModels[s].Metadata != first.StreamModels[s].Metadata {
				return nil, fmt.Errorf("%w: voice %d stream %d metadata differs", ErrMetadataMismatch, i+1, s)
			}
		}
	}
	return &VoiceSet{voices: voices}, nil
}

// Len returns the number of voices in the set.
func (vs *VoiceSet) Len() int {
	return len(vs.voices)
}

// At returns the voice at index i.
func (vs *VoiceSet) At(i int) *Voice {
	return vs.voices[i]
}

// GlobalMetadata returns the (shared) global metadata.
func (vs *VoiceSet) GlobalMetadata() GlobalMetadata {
	return vs.voices[0].Metadata
}

// StreamMetadata returns the (shared) metadata for stream streamIndex.
func (vs *VoiceSet) StreamMetadata(streamIndex int) StreamMetadata {
	return vs.voices[0].StreamModels[streamIndex].Metadata
}

// StreamWindows returns the (shared) regression windows for stream
// streamIndex.
func (vs *VoiceSet) StreamWindows(streamIndex int) Windows {
	return vs.voices[0].StreamModels[streamIndex].Windows
}
