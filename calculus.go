package linebreak

import "math"

// adjustmentRatio computes r for a line of natural width L against a
// target width W, given the line's total glue stretch Y and shrink Z.
//
//   - L == W: the line fits exactly, r = 0.
//   - L < W: the line must stretch; r = (W-L)/Y, or +Inf if Y == 0.
//   - L > W: the line must shrink; r = (W-L)/Z, or -Inf if Z == 0.
func adjustmentRatio(L, W, Y, Z float64) float64 {
	switch {
	case L == W:
		return 0
	case L < W:
		if Y > 0 {
			return (W - L) / Y
		}
		return math.Inf(1)
	default:
		if Z > 0 {
			return (W - L) / Z
		}
		return math.Inf(-1)
	}
}

// badness converts an adjustment ratio into Knuth & Plass's badness
// measure. r < -1 means the line cannot shrink enough to fit at all,
// which is treated as infinitely bad.
func badness(r float64) float64 {
	if r < -1 {
		return math.Inf(1)
	}
	return 100 * math.Pow(math.Abs(r), 3)
}

// Fitness classes, in order from tightest to loosest.
const (
	FitnessTight = iota
	FitnessNormal
	FitnessLoose
	FitnessVeryLoose
)

// fitnessClass buckets an adjustment ratio into one of four classes,
// used to penalize visually jarring adjacent-line fitness changes.
func fitnessClass(r float64) int {
	switch {
	case r < -0.5:
		return FitnessTight
	case r < 0.5:
		return FitnessNormal
	case r < 1.0:
		return FitnessLoose
	default:
		return FitnessVeryLoose
	}
}

// demerits computes the cost of breaking a line with the given line
// penalty constant, badness, and the break's own penalty value p, then
// adds the flagged-pair penalty alpha and fitness-jump penalty gamma
// (both passed in pre-selected as 0 or their configured value by the
// caller, which knows the neighboring break's flags and fitness).
func demerits(linePenalty, beta, p, alpha, gamma float64) float64 {
	var base float64
	switch {
	case math.IsInf(p, -1):
		base = square(linePenalty + beta)
	case p >= 0:
		base = square(linePenalty + beta + p)
	default:
		base = square(linePenalty+beta) - p*p
	}
	return base + alpha + gamma
}

func square(x float64) float64 {
	return x * x
}
