package jbonsai

import (
	"fmt"
	"math"
)

const weightSumTolerance = 1e-6

// condition holds the per-voice interpolation weights used to blend
// multiple loaded voices before duration and parameter generation,
// per spec.md §6 "condition.interporation_weight".
type condition struct {
	numVoices  int
	numStreams int
	duration   []float64
	parameter  [][]float64 // per stream index
}

func newCondition(numVoices, numStreams int) *condition {
	c := &condition{
		numVoices:  numVoices,
		numStreams: numStreams,
		duration:   uniformWeights(numVoices),
		parameter:  make([][]float64, numStreams),
	}
	for s := range c.parameter {
		c.parameter[s] = uniformWeights(numVoices)
	}
	return c
}

func uniformWeights(n int) []float64 {
	w := make([]float64, n)
	if n == 0 {
		return w
	}
	u := 1.0 / float64(n)
	for i := range w {
		w[i] = u
	}
	return w
}

// setDuration validates and stores the duration-stream interpolation
// weights.
func (c *condition) setDuration(w []float64) error {
	if err := validateWeights(w, c.numVoices); err != nil {
		return err
	}
	c.duration = append([]float64(nil), w...)
	return nil
}

// setParameter validates and stores streamIndex's interpolation weights.
func (c *condition) setParameter(streamIndex int, w []float64) error {
	if streamIndex < 0 || streamIndex >= c.numStreams {
		return fmt.Errorf("%w: stream index %d out of range [0,%d)", ErrWeight, streamIndex, c.numStreams)
	}
	if err := validateWeights(w, c.numVoices); err != nil {
		return err
	}
	c.parameter[streamIndex] = append([]float64(nil), w...)
	return nil
}

// validateWeights enforces spec.md §6/§7: correct length, no negative
// entries, and a sum within 1e-6 of 1.
func validateWeights(w []float64, numVoices int) error {
	if len(w) != numVoices {
		return fmt.Errorf("%w: length %d, want %d", ErrWeight, len(w), numVoices)
	}
	sum := 0.0
	for i, v := range w {
		if v < 0 {
			return fmt.Errorf("%w: negative entry at %d (%v)", ErrWeight, i, v)
		}
		sum += v
	}
	if math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("%w: weights sum to %v, want 1±%v", ErrWeight, sum, weightSumTolerance)
	}
	return nil
}
