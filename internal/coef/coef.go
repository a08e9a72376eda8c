// Package coef implements the mel-(generalized)-cepstrum coefficient
// transforms that sit between a trajectory dimension and the vocoder
// filter: b2mc/mc2b, freqt, c2ir, gnorm/ignorm, and b2en.
//
// Grounded on original_source/src/vocoder/coefficients.rs and
// src/vocoder/generalized.rs. Pure closed-form recursions over []float64;
// no third-party DSP library in the pack implements the mel-generalized-
// cepstrum transforms HTS-style vocoders use (DESIGN.md), so this stays on
// math/stdlib.
package coef

import "math"

// B2MC converts a mel-cepstrum-parameterized filter coefficient vector b
// (length M+1) into mc (same length), given warping factor alpha.
func B2MC(b []float64, alpha float64) []float64 {
	n := len(b)
	mc := make([]float64, n)
	if n == 0 {
		return mc
	}
	last := n - 1
	mc[last] = b[last]
	for i := last - 1; i >= 0; i-- {
		mc[i] = b[i] + alpha*b[i+1]
	}
	return mc
}

// MC2B is the inverse of B2MC.
func MC2B(mc []float64, alpha float64) []float64 {
	n := len(mc)
	b := make([]float64, n)
	if n == 0 {
		return b
	}
	last := n - 1
	b[last] = mc[last]
	for i := last - 1; i >= 0; i-- {
		b[i] = mc[i] - alpha*b[i+1]
	}
	return b
}

// Freqt performs the frequency-warping (all-pass substitution) recursion,
// producing an order-newM cepstrum from an order-len(c)-1 cepstrum warped
// by alpha.
func Freqt(c []float64, newM int, alpha float64) []float64 {
	m := len(c) - 1
	out := make([]float64, newM+1)
	if m < 0 {
		return out
	}

	prev := make([]float64, newM+1)
	for k := m; k >= 0; k-- {
		cur := make([]float64, newM+1)
		cur[0] = c[k] + alpha*prev[0]
		if newM >= 1 {
			cur[1] = (1-alpha*alpha)*prev[0] + alpha*prev[1]
			for i := 2; i <= newM; i++ {
				cur[i] = prev[i-1] + alpha*(prev[i]-cur[i-1])
			}
		}
		prev = cur
	}
	return prev
}

// C2IR computes the length-n minimum-phase impulse response of cepstrum c
// via the standard cepstrum-to-impulse-response recursion.
func C2IR(c []float64, n int) []float64 {
	h := make([]float64, n)
	if n == 0 {
		return h
	}
	h[0] = math.Exp(c[0])
	for k := 1; k < n; k++ {
		sum := 0.0
		top := k
		if top > len(c)-1 {
			top = len(c) - 1
		}
		for i := 1; i <= top; i++ {
			sum += float64(i) * c[i] * h[k-i]
		}
		h[k] = sum / float64(k)
	}
	return h
}

// Gamma-parameterized generalized-log-spectrum normalization. gamma=0 is
// the pure-log special case (stage-0 MLSA filter); gamma=-1/stage for
// stage>=1 (MGLSA filter).

// Gnorm applies gain normalization to a generalized cepstrum c with
// exponent gamma.
func Gnorm(c []float64, gamma float64) []float64 {
	out := make([]float64, len(c))
	if len(c) == 0 {
		return out
	}
	if gamma != 0 {
		k := 1 + gamma*c[0]
		out[0] = math.Pow(k, 1/gamma)
		for i := 1; i < len(c); i++ {
			out[i] = c[i] / k
		}
	} else {
		out[0] = math.Exp(c[0])
		copy(out[1:], c[1:])
	}
	return out
}

// Ignorm is the inverse of Gnorm.
func Ignorm(c []float64, gamma float64) []float64 {
	out := make([]float64, len(c))
	if len(c) == 0 {
		return out
	}
	if gamma != 0 {
		k := math.Pow(c[0], gamma)
		out[0] = (k - 1) / gamma
		for i := 1; i < len(c); i++ {
			out[i] = c[i] * k
		}
	} else {
		out[0] = math.Log(c[0])
		copy(out[1:], c[1:])
	}
	return out
}

// B2En computes the energy of the minimum-phase impulse response of
// coefficient vector b (a mel-cepstrum-parameterized filter), truncated to
// irLength taps. irLength is configurable (spec.md §9 Open Question: the
// reference's 576 is empirical).
func B2En(b []float64, alpha float64, irLength int) float64 {
	mc := B2MC(b, alpha)
	warped := Freqt(mc, irLength-1, -alpha)
	ir := C2IR(warped, irLength)

	sum := 0.0
	for _, v := range ir {
		sum += v * v
	}
	return sum
}
