package model

import "errors"

// Sentinel errors surfaced by voice loading, matching the error kinds of
// spec.md §7 that originate in the model layer.
var (
	ErrEmptyVoiceSet     = errors.New("model: empty voice set")
	ErrMetadataMismatch  = errors.New("model: metadata mismatch between voices")
	ErrMalformedVoice    = errors.New("model: malformed voice data")
)
