package scoring

import "sort"

// Non-linear aggregation constants.
const (
	peerRawWeight        = 0.7
	peerPercentileWeight = 0.3
	synergyThreshold     = 7.0
	synergyMinFactors    = 3
	synergyMultiplier    = 0.5
	weaknessThreshold    = 3.0
	weaknessPenaltyStep  = 0.2
	// MaxScore is the ceiling of the public 1000-point scale.
	MaxScore = 1000.0
)

// PeerAdjust blends a raw factor score with its percentile rank against a
// reference population. The raw score itself joins the population before
// ranking, matching the mid-rank convention's treatment of self-ties.
func PeerAdjust(raw float64, population []float64) float64 {
	augmented := make([]float64, 0, len(population)+1)
	augmented = append(augmented, population...)
	augmented = append(augmented, raw)
	return peerRawWeight*raw + peerPercentileWeight*PercentileRank(raw, augmented)
}

// BaseScore is the weighted sum of adjusted factor scores. With weights
// summing to 1.0 this is a convex combination, so it stays in [0,10] whenever
// the adjusted scores do.
func BaseScore(adjusted map[Factor]float64, w WeightSet) float64 {
	var total float64
	for _, f := range Factors {
		total += w.Get(f) * adjusted[f]
	}
	return total
}

// SynergyBonus rewards broad excellence: when at least 3 adjusted factors
// exceed 7.0, the bonus is 0.5 * (mean of the top 3 such scores - 7), floored
// at 0. Otherwise 0.
func SynergyBonus(adjusted map[Factor]float64) float64 {
	var high []float64
	for _, f := range Factors {
		if adjusted[f] > synergyThreshold {
			high = append(high, adjusted[f])
		}
	}
	if len(high) < synergyMinFactors {
		return 0
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(high)))
	mean := (high[0] + high[1] + high[2]) / 3
	bonus := synergyMultiplier * (mean - synergyThreshold)
	if bonus < 0 {
		return 0
	}
	return bonus
}

// WeaknessPenalty charges 0.2 per adjusted factor below 3.0.
func WeaknessPenalty(adjusted map[Factor]float64) float64 {
	var failing int
	for _, f := range Factors {
		if adjusted[f] < weaknessThreshold {
			failing++
		}
	}
	return weaknessPenaltyStep * float64(failing)
}

// FinalScore clamps base + bonus - penalty into [0,10].
func FinalScore(base, bonus, penalty float64) float64 {
	return clamp(base+bonus-penalty, 0, 10)
}
