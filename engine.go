package jbonsai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/htsengine/jbonsai/internal/excite"
	"github.com/htsengine/jbonsai/internal/gv"
	"github.com/htsengine/jbonsai/internal/label"
	"github.com/htsengine/jbonsai/internal/model"
	"github.com/htsengine/jbonsai/internal/trajectory"
)

// durationStreamIndex is the fixed position of the duration stream in
// every voice's StreamModels, matching the convention HTS voice files
// ship with (spec.md §6 "per stream model record"): the duration stream
// is searched per state to size every other stream's segments.
const durationStreamIndex = 0

// spectrumStreamName and lf0StreamName identify the two parameter
// streams the vocoder and excitation source are specialized for;
// every other configured stream is still MLPG/GV-generated but carried
// only as a trajectory (e.g. aperiodicity streams some voices ship),
// not yet consumed by a filter stage (spec.md §1 Non-goals: this engine
// targets a single-band MLSA/MGLSA vocoder).
const (
	spectrumStreamName = "mgc"
	lf0StreamName      = "lf0"
)

// defaultStreamNames is used when EngineConfig.StreamNames is empty.
var defaultStreamNames = []string{"duration", spectrumStreamName, lf0StreamName}

// Engine is a loaded, immutable voice set ready to synthesize. It is safe
// for concurrent SynthesizeFromStrings calls (spec.md §5-NEW): each call
// builds its own *excite.Synthesizer and mutable filter state.
type Engine struct {
	voices      *model.VoiceSet
	cond        *condition
	cfg         EngineConfig
	streamNames []string
}

// Load reads and validates one or more voice files, returning a ready
// Engine or one of the sentinel errors in errors.go (spec.md §7).
func Load(paths []string, cfg EngineConfig) (*Engine, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyVoiceSet
	}

	streamNames := cfg.StreamNames
	if len(streamNames) == 0 {
		streamNames = defaultStreamNames
	}

	voices := make([]*model.Voice, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %q: %v", ErrIO, p, err)
		}
		v, err := model.ReadVoice(f, streamNames)
		closeErr := f.Close()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: reading %q: %v", ErrIO, p, err)
			}
			return nil, fmt.Errorf("%w: %v", ErrMalformedVoice, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("%w: closing %q: %v", ErrIO, p, closeErr)
		}
		voices = append(voices, v)
	}

	set, err := model.NewVoiceSet(voices)
	if err != nil {
		return nil, translateModelError(err)
	}

	validated, err := cfg.validate(len(streamNames))
	if err != nil {
		return nil, err
	}

	return &Engine{
		voices:      set,
		cond:        newCondition(set.Len(), len(streamNames)),
		cfg:         validated,
		streamNames: streamNames,
	}, nil
}

func translateModelError(err error) error {
	switch {
	case errors.Is(err, model.ErrEmptyVoiceSet):
		return fmt.Errorf("%w: %v", ErrEmptyVoiceSet, err)
	case errors.Is(err, model.ErrMetadataMismatch):
		return fmt.Errorf("%w: %v", ErrMetadataMismatch, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformedVoice, err)
	}
}

// SetDurationWeights sets the interpolation weights used for the
// duration stream across the loaded voices.
func (e *Engine) SetDurationWeights(w []float64) error {
	return e.cond.setDuration(w)
}

// SetParameterWeights sets the interpolation weights used for
// streamIndex's parameter generation across the loaded voices.
func (e *Engine) SetParameterWeights(streamIndex int, w []float64) error {
	return e.cond.setParameter(streamIndex, w)
}

// SampleRate returns the voice set's sampling frequency in Hz.
func (e *Engine) SampleRate() int {
	return e.voices.GlobalMetadata().SamplingFrequency
}

// SynthesizeFromStrings synthesizes PCM from a sequence of full-context
// label lines, using context.Background().
func (e *Engine) SynthesizeFromStrings(labels []string) ([]float64, error) {
	return e.SynthesizeFromStringsContext(context.Background(), labels)
}

// SynthesizeFromStringsContext is the cancellation-aware entry point
// (spec.md §5 "cooperative cancellation signal checked at frame
// boundaries").
func (e *Engine) SynthesizeFromStringsContext(ctx context.Context, labels []string) ([]float64, error) {
	parsed := make([]label.Label, len(labels))
	for i, l := range labels {
		p, err := label.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLabel, err)
		}
		parsed[i] = p
	}

	meta := e.voices.GlobalMetadata()
	numStates := meta.NumStates

	durations, err := e.predictDurations(parsed, numStates)
	if err != nil {
		return nil, err
	}

	spectrumIdx, lf0Idx := -1, -1
	for i, name := range e.streamNames {
		switch name {
		case spectrumStreamName:
			spectrumIdx = i
		case lf0StreamName:
			lf0Idx = i
		}
	}
	if spectrumIdx < 0 || lf0Idx < 0 {
		return nil, fmt.Errorf("%w: configured stream names must include %q and %q", ErrMalformedVoice, spectrumStreamName, lf0StreamName)
	}

	spectrumTraj, spectrumVL, err := e.generateStream(parsed, durations, numStates, spectrumIdx)
	if err != nil {
		return nil, err
	}
	lf0Traj, _, err := e.generateStream(parsed, durations, numStates, lf0Idx)
	if err != nil {
		return nil, err
	}

	frames := make([]excite.Frame, len(lf0Traj))
	for t := range frames {
		voiced := len(lf0Traj[t]) > 0 && lf0Traj[t][0] != model.NODATA
		frames[t] = excite.Frame{
			Spectrum: spectrumTraj[t],
			Voiced:   voiced,
		}
		if voiced {
			frames[t].LogF0 = lf0Traj[t][0]
		}
	}

	order := spectrumVL - 1
	synth := excite.NewSynthesizer(
		meta.SamplingFrequency,
		meta.FramePeriod,
		order,
		e.cfg.Stage,
		e.cfg.Alpha,
		e.cfg.ImpulseResponseLength,
		e.cfg.ExcitationSeed,
		e.cfg.UnvoicedNoise,
	)
	return synth.Synthesize(ctx, frames)
}

// predictDurations walks the duration stream's per-state trees for every
// label, returning each label's per-state frame counts flattened in
// label-major, state-minor order (one entry per segment the parameter
// streams will also produce).
func (e *Engine) predictDurations(labels []label.Label, numStates int) ([]int, error) {
	streamMeta := e.voices.StreamMetadata(durationStreamIndex)
	durations := make([]int, 0, len(labels)*numStates)

	for _, l := range labels {
		for s := 0; s < numStates; s++ {
			mean, err := e.interpolatedDuration(l.Context, s, streamMeta)
			if err != nil {
				return nil, err
			}
			d := int(mean + 0.5)
			if d < 1 {
				d = 1
			}
			durations = append(durations, d)
		}
	}
	return durations, nil
}

func (e *Engine) interpolatedDuration(context string, state int, streamMeta model.StreamMetadata) (float64, error) {
	weights := e.cond.duration
	total := 0.0
	for vi := 0; vi < e.voices.Len(); vi++ {
		w := weights[vi]
		if w == 0 {
			continue
		}
		sm := e.voices.At(vi).StreamModels[durationStreamIndex]
		leaf, ok := sm.Trees[state].Search(context)
		if !ok {
			return 0, fmt.Errorf("%w: duration tree search failed for state %d", ErrMalformedVoice, state)
		}
		params, _ := sm.PDF.Leaf(leaf)
		seg := model.BuildSegment(params, streamMeta.VectorLength, streamMeta.NumWindows, 1)
		total += w * seg.Params[0].Mean
	}
	return total, nil
}

// generateStream runs tree search, MLPG, and optional GV refinement for
// one parameter stream across all labels/states, returning its dense
// trajectory and vector length.
func (e *Engine) generateStream(labels []label.Label, durations []int, numStates, streamIndex int) ([][]float64, int, error) {
	streamMeta := e.voices.StreamMetadata(streamIndex)
	windows := e.voices.StreamWindows(streamIndex)
	weights := e.cond.parameter[streamIndex]

	segments := make([]model.Segment, 0, len(labels)*numStates)
	for _, l := range labels {
		for s := 0; s < numStates; s++ {
			seg, err := e.interpolatedSegment(l.Context, s, streamIndex, streamMeta, weights)
			if err != nil {
				return nil, 0, err
			}
			segments = append(segments, seg)
		}
	}

	if streamIndex == e.lf0Index() && e.cfg.AllHalfTone != 0 {
		sp := model.StreamParameter{Segments: segments}
		sp.ApplyAdditionalHalfTone(e.cfg.AllHalfTone)
		segments = sp.Segments
	}

	gvWeight := 0.0
	if streamIndex < len(e.cfg.GvWeight) {
		gvWeight = e.cfg.GvWeight[streamIndex]
	}

	var gvTargets []gv.Parameter
	if gvWeight > 0 {
		gvTargets = e.gvTargets(labels, streamIndex, streamMeta)
	}

	maxIter := e.cfg.GVMaxIteration
	traj := trajectory.Generate(windows, segments, durations, streamMeta.VectorLength, e.cfg.MsdThreshold, gvTargets, gvWeight, nil, maxIter)
	return traj, streamMeta.VectorLength, nil
}

func (e *Engine) lf0Index() int {
	for i, name := range e.streamNames {
		if name == lf0StreamName {
			return i
		}
	}
	return -1
}

func (e *Engine) interpolatedSegment(context string, state, streamIndex int, streamMeta model.StreamMetadata, weights []float64) (model.Segment, error) {
	n := streamMeta.VectorLength * streamMeta.NumWindows
	meanAcc := make([]float64, n)
	variAcc := make([]float64, n)
	msdAcc := 0.0
	totalWeight := 0.0

	for vi := 0; vi < e.voices.Len(); vi++ {
		w := weights[vi]
		if w == 0 {
			continue
		}
		sm := e.voices.At(vi).StreamModels[streamIndex]
		leaf, ok := sm.Trees[state].Search(context)
		if !ok {
			return model.Segment{}, fmt.Errorf("%w: stream %d tree search failed for state %d", ErrMalformedVoice, streamIndex, state)
		}
		params, msdWeight := sm.PDF.Leaf(leaf)
		seg := model.BuildSegment(params, streamMeta.VectorLength, streamMeta.NumWindows, msdWeight)
		for i, mv := range seg.Params {
			meanAcc[i] += w * mv.Mean
			variAcc[i] += w * mv.Vari
		}
		msdAcc += w * msdWeight
		totalWeight += w
	}

	out := model.BuildSegment(interleaveMeanVari(meanAcc, variAcc, streamMeta.VectorLength, streamMeta.NumWindows), streamMeta.VectorLength, streamMeta.NumWindows, msdAcc)
	return out, nil
}

// interleaveMeanVari rebuilds the window-major (means-then-variances) flat
// layout BuildSegment expects from separately accumulated mean/variance
// slices (both already window-major, dimension-fastest).
func interleaveMeanVari(mean, vari []float64, vectorLength, numWindows int) []float64 {
	out := make([]float64, 2*vectorLength*numWindows)
	for w := 0; w < numWindows; w++ {
		srcBase := w * vectorLength
		dstBase := w * vectorLength * 2
		copy(out[dstBase:dstBase+vectorLength], mean[srcBase:srcBase+vectorLength])
		copy(out[dstBase+vectorLength:dstBase+2*vectorLength], vari[srcBase:srcBase+vectorLength])
	}
	return out
}

// gvTargets derives a per-dimension Global Variance target by searching
// the first label's context against the stream's GV trees; this engine
// applies one GV target per dimension for the whole utterance, the
// common HTS simplification of a context-independent or
// weakly-context-dependent GV model.
func (e *Engine) gvTargets(labels []label.Label, streamIndex int, streamMeta model.StreamMetadata) []gv.Parameter {
	if len(labels) == 0 {
		return nil
	}
	sm := e.voices.At(0).StreamModels[streamIndex]
	if sm.GV == nil || len(sm.GV.Trees) == 0 {
		return nil
	}

	context := labels[0].Context
	targets := make([]gv.Parameter, streamMeta.VectorLength)
	leaf, ok := sm.GV.Trees[0].Search(context)
	if !ok {
		return nil
	}
	params, _ := sm.GV.PDF.Leaf(leaf)
	seg := model.BuildSegment(params, streamMeta.VectorLength, 1, 1)
	for d := 0; d < streamMeta.VectorLength; d++ {
		targets[d] = gv.Parameter{Mean: seg.Params[d].Mean, Vari: seg.Params[d].Vari}
	}
	return targets
}
