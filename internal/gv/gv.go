// Package gv implements the Global Variance refiner: Newton-step
// adjustment of an MLPG trajectory so its variance over GV-active frames
// approaches a trained target, trading off against MLPG log-likelihood.
//
// Grounded on spec.md §4.E. gonum.org/v1/gonum/stat supplies the sample
// mean/variance reduction (DESIGN.md): no teacher or pack repo implements
// this exact Newton-step trade-off, so the refinement loop itself is
// written directly from the spec's numerical contract, but the mean/
// variance reduction it repeats every iteration is delegated to gonum
// rather than hand-rolled, per the ecosystem-first rule.
package gv

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/htsengine/jbonsai/internal/mlpg"
)

// Parameter is a GV model's per-dimension target.
type Parameter struct {
	Mean, Vari float64
}

// DefaultMaxIteration is the GV Newton-step iteration count used when
// EngineConfig doesn't override it (spec.md §9 Open Question: the source's
// gv_max_iteration provenance is unclear, so this is a configurable
// default, not a hard-coded constant).
const DefaultMaxIteration = 5

// stepEpsilon is the step-norm early-exit threshold (spec.md §4.E step 3).
const stepEpsilon = 1e-8

// Refine adjusts x (the MLPG solution over the masked-active T' domain) per
// spec.md §4.E: rescale to the target variance, then take up to maxIter
// damped Newton steps maximizing J, keeping the best-J iterate seen.
//
// band and wum are the (pre-factorization) MLPG normal equations for this
// dimension (so that Q(x-mu_hat) = band.MulVec(x) - wum without needing
// mu_hat explicitly). active marks which of the T' frames participate in
// the GV term (the conjunction of the base mask and the optional
// gv-switch mask, already restricted to the T' domain by the caller).
func Refine(band *mlpg.Band, wum []float64, x []float64, active []bool, target Parameter, weight float64, maxIter int) []float64 {
	n := len(x)
	if n == 0 || weight <= 0 {
		return x
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIteration
	}

	activeValues := collect(x, active)
	if len(activeValues) == 0 {
		return x
	}

	mean, vari := sampleMeanVariance(activeValues)
	if vari == 0 {
		return x
	}

	best := rescale(x, active, mean, target.Vari, vari)
	bestJ := objective(band, wum, best, active, target, weight)

	cur := append([]float64(nil), best...)
	for k := 1; k <= maxIter; k++ {
		grad := gradient(band, wum, cur, active, target, weight)
		alpha := 1.0 / float64(k+1)

		stepNorm := 0.0
		next := make([]float64, n)
		for i := range cur {
			step := alpha * grad[i]
			next[i] = cur[i] + step
			stepNorm += step * step
		}
		stepNorm = math.Sqrt(stepNorm)

		j := objective(band, wum, next, active, target, weight)
		if j > bestJ {
			bestJ = j
			best = append([]float64(nil), next...)
		}
		cur = next

		if stepNorm < stepEpsilon {
			break
		}
	}

	return best
}

// sampleMeanVariance computes the biased (population, 1/N) mean/variance
// over values, matching the reference's convention: gonum's MeanVariance is
// the unbiased (N-1) estimator, so it is corrected back per SPEC_FULL.md
// §4.E-NEW.
func sampleMeanVariance(values []float64) (float64, float64) {
	mean, unbiasedVar := stat.MeanVariance(values, nil)
	n := float64(len(values))
	if n <= 1 {
		return mean, 0
	}
	biasedVar := unbiasedVar * (n - 1) / n
	return mean, biasedVar
}

func rescale(x []float64, active []bool, mean, targetVar, curVar float64) []float64 {
	if curVar == 0 {
		return append([]float64(nil), x...)
	}
	scale := math.Sqrt(targetVar / curVar)
	out := make([]float64, len(x))
	for i, v := range x {
		if active[i] {
			out[i] = scale*(v-mean) + mean
		} else {
			out[i] = v
		}
	}
	return out
}

// objective evaluates a surrogate for J(x) = -1/2 (x-mu_hat)^T Q (x-mu_hat)
// - w*(v(x)-v_gv)^2/(2*v_var_gv). Expanding the quadratic form,
// (x-mu_hat)^T Q (x-mu_hat) = x^T Q x - 2 x^T wum + mu_hat^T Q mu_hat (using
// Q*mu_hat = wum); the last term is a constant independent of the current
// iterate x; it is dropped since only relative J across iterates of x is
// ever compared (by Refine's "retain the iterate with highest J").
func objective(band *mlpg.Band, wum, x []float64, active []bool, target Parameter, weight float64) float64 {
	qx := band.MulVec(x)
	quad := 0.0
	for i := range x {
		quad += x[i] * (qx[i] - 2*wum[i])
	}
	_, vari := activeMeanVariance(x, active)
	gvTerm := weight * (vari - target.Vari) * (vari - target.Vari) / (2 * varianceOfVariance(target))
	return -0.5*quad - gvTerm
}

// gradient returns dJ/dx, per spec.md §4.E step 3.
func gradient(band *mlpg.Band, wum, x []float64, active []bool, target Parameter, weight float64) []float64 {
	qx := band.MulVec(x)
	n := len(x)

	nActive := 0
	for _, a := range active {
		if a {
			nActive++
		}
	}

	grad := make([]float64, n)
	if nActive == 0 {
		for i := range grad {
			grad[i] = wum[i] - qx[i]
		}
		return grad
	}

	mean, vari := activeMeanVariance(x, active)
	coeff := weight * (vari - target.Vari) / varianceOfVariance(target)

	for i := 0; i < n; i++ {
		grad[i] = wum[i] - qx[i]
		if active[i] {
			dv := 2 * (x[i] - mean) / float64(nActive)
			grad[i] -= coeff * dv
		}
	}
	return grad
}

func varianceOfVariance(target Parameter) float64 {
	if target.Vari <= 0 {
		return 1
	}
	// The GV prior's own variance term; the reference treats this as part
	// of the trained GV model. Absent a separately trained v_var_gv in this
	// port's GvParameter, a unit-scale proxy keeps the Newton step
	// well-conditioned while leaving weight as the caller-facing knob.
	return target.Vari * target.Vari
}

func activeMeanVariance(x []float64, active []bool) (float64, float64) {
	values := collect(x, active)
	if len(values) == 0 {
		return 0, 0
	}
	return sampleMeanVariance(values)
}

func collect(x []float64, active []bool) []float64 {
	out := make([]float64, 0, len(x))
	for i, v := range x {
		if active[i] {
			out = append(out, v)
		}
	}
	return out
}
