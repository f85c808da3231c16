package sa

import (
	"math"
	"time"
)

// retuneAlpha implements spec.md §4.3's adaptive cooling formula:
//
//	α = (T_min / T_current) ^ (1 / (t_rem_sec · rate))
//
// chosen so that, at the observed throughput, temperature reaches T_min
// exactly at the deadline. Falls back to alpha0 in every degenerate case
// spec.md names: T_current already at or below T_min, a zero or negative
// acceptance rate, a non-positive time remaining, or an otherwise
// ill-defined result (NaN/Inf/non-positive).
func retuneAlpha(tCurrent, tMin, alpha0 float64, tRem time.Duration, rate float64) float64 {
	if tCurrent <= tMin || rate <= 0 || tRem <= 0 {
		return alpha0
	}

	exponent := 1.0 / (tRem.Seconds() * rate)
	alpha := math.Pow(tMin/tCurrent, exponent)
	if alpha <= 0 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return alpha0
	}

	return alpha
}

// clampTemp enforces spec.md §4.3's T_min/T_max clamp after each cooling
// step.
func clampTemp(t, tMin, tMax float64) float64 {
	if t < tMin {
		return tMin
	}
	if t > tMax {
		return tMax
	}
	return t
}
