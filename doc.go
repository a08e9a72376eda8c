// Package jbonsai implements an HMM-based statistical-parametric speech
// synthesis engine: full-context label input, decision-tree-driven HMM
// voice models, MLPG trajectory generation with Global Variance
// refinement, and an MLSA/MGLSA vocoder producing raw PCM.
//
// # Pipeline
//
// Synthesis proceeds in five stages:
//   - parse a full-context label line (internal/label) and walk each
//     stream's decision trees (internal/model) to select Gaussian PDFs
//   - predict state durations and expand each stream into per-frame
//     Gaussian (mean, ivar) sequences
//   - solve the MLPG normal equations per dimension (internal/mlpg),
//     optionally refined against a trained Global Variance target
//     (internal/gv)
//   - interpolate the resulting trajectory frame-by-frame and drive an
//     MLSA or MGLSA synthesis filter (internal/vocoder) from a
//     pitch-synchronous excitation source (internal/excite)
//   - optionally encode the resulting waveform to WAV (internal/wavio)
//
// # Voice sets and interpolation
//
// Load accepts one or more voice files; with more than one, SetDurationWeights
// and SetParameterWeights control per-stream linear interpolation across the
// loaded voices before synthesis.
//
// # Concurrency
//
// A loaded *Engine is safe for concurrent SynthesizeFromStrings calls; each
// call allocates its own mutable filter and excitation state.
package jbonsai
