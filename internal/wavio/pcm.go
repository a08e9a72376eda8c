// Package wavio converts the engine's float64 PCM output to 16-bit signed
// samples clamped to [-32768, 32767] (spec.md §6 "CLI/driver"), and
// optionally encodes them to a WAV file.
//
// Grounded on thesyncim-gopus's pcm.go float64ToInt16/float32ToInt16
// clamping helpers, generalized from Opus's [-1,1]-normalized samples to
// this engine's unnormalized vocoder output.
package wavio

import (
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ToInt16 clamps and rounds one float64 PCM sample to a 16-bit signed
// sample, per spec.md §6 "clamped to [-32768, 32767]".
func ToInt16(sample float64) int16 {
	if sample > 32767.0 {
		return 32767
	}
	if sample < -32768.0 {
		return -32768
	}
	return int16(math.RoundToEven(sample))
}

// ToInt16Slice converts a whole waveform.
func ToInt16Slice(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = ToInt16(s)
	}
	return out
}

// WriteWAV encodes samples as mono 16-bit PCM at sampleRate to w.
func WriteWAV(w io.WriteSeeker, samples []float64, sampleRate int) error {
	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)

	ints := ToInt16Slice(samples)
	ibuf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, len(ints)),
		SourceBitDepth: 16,
	}
	for i, v := range ints {
		ibuf.Data[i] = int(v)
	}
	if err := enc.Write(ibuf); err != nil {
		return err
	}
	return enc.Close()
}
