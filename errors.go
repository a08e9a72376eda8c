// errors.go defines the public error sentinels for the jbonsai package,
// matching the error kinds of spec.md §7. Call sites wrap these with
// %w so errors.Is against the sentinel is the supported inspection path.

package jbonsai

import "errors"

var (
	// ErrIO indicates a voice file could not be read or was truncated.
	ErrIO = errors.New("jbonsai: voice file i/o error")

	// ErrMetadataMismatch indicates two voices in a set disagree on
	// sampling frequency, frame period, state count, or stream layout.
	ErrMetadataMismatch = errors.New("jbonsai: voice metadata mismatch")

	// ErrEmptyVoiceSet indicates Load was called with no voice paths.
	ErrEmptyVoiceSet = errors.New("jbonsai: empty voice set")

	// ErrMalformedVoice indicates a voice file's contents are invalid
	// (missing or malformed header key, unknown question, non-finite PDF
	// value, a tree search reaching a missing node, and similar). Load
	// also reports invalid EngineConfig values with it.
	ErrMalformedVoice = errors.New("jbonsai: malformed voice data")

	// ErrWeight indicates an interpolation weight vector is the wrong
	// length or does not sum to 1 within tolerance.
	ErrWeight = errors.New("jbonsai: invalid interpolation weights")

	// ErrLabel indicates a full-context label line failed to parse.
	ErrLabel = errors.New("jbonsai: malformed label")
)
