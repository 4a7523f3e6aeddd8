package scoring

import (
	"fmt"
	"math"
)

// Scheme selects a global weighting of the five factors.
type Scheme string

const (
	SchemeDefault  Scheme = "default"
	SchemeResearch Scheme = "research"
	SchemeTeaching Scheme = "teaching"
	SchemeCustom   Scheme = "custom"
)

// WeightSet defines the relative importance of each factor.
// All weights must sum to 1.0 (±0.001 tolerance).
type WeightSet struct {
	QTF float64 `json:"qtf"`
	TM  float64 `json:"tm"`
	PS  float64 `json:"ps"`
	CC  float64 `json:"cc"`
	RO  float64 `json:"ro"`
}

// DefaultWeights returns the balanced weight distribution.
func DefaultWeights() WeightSet {
	return WeightSet{QTF: 0.25, TM: 0.20, PS: 0.20, CC: 0.15, RO: 0.20}
}

// ResearchFocusedWeights shifts weight toward research opportunities.
func ResearchFocusedWeights() WeightSet {
	return WeightSet{QTF: 0.20, TM: 0.15, PS: 0.15, CC: 0.10, RO: 0.30}
}

// TeachingFocusedWeights shifts weight toward faculty and pedagogy.
func TeachingFocusedWeights() WeightSet {
	return WeightSet{QTF: 0.35, TM: 0.30, PS: 0.15, CC: 0.10, RO: 0.10}
}

// PresetWeights returns the weight set for a non-custom scheme.
func PresetWeights(s Scheme) (WeightSet, bool) {
	switch s {
	case SchemeDefault:
		return DefaultWeights(), true
	case SchemeResearch:
		return ResearchFocusedWeights(), true
	case SchemeTeaching:
		return TeachingFocusedWeights(), true
	default:
		return WeightSet{}, false
	}
}

// CustomWeights builds a WeightSet from integer percentages. Percentages not
// summing to 100 are renormalized proportionally; renormalized reports when
// that happened so the caller can surface a warning. Negative or all-zero
// percentages are invalid.
func CustomWeights(qtf, tm, ps, cc, ro int) (w WeightSet, renormalized bool, err error) {
	for _, p := range []int{qtf, tm, ps, cc, ro} {
		if p < 0 {
			return WeightSet{}, false, fmt.Errorf("negative weight percentage: %d", p)
		}
	}
	total := qtf + tm + ps + cc + ro
	if total == 0 {
		return WeightSet{}, false, fmt.Errorf("custom weight percentages sum to 0")
	}
	div := float64(total)
	w = WeightSet{
		QTF: float64(qtf) / div,
		TM:  float64(tm) / div,
		PS:  float64(ps) / div,
		CC:  float64(cc) / div,
		RO:  float64(ro) / div,
	}
	return w, total != 100, nil
}

// Get returns the weight for a factor.
func (w WeightSet) Get(f Factor) float64 {
	switch f {
	case FactorQTF:
		return w.QTF
	case FactorTM:
		return w.TM
	case FactorPS:
		return w.PS
	case FactorCC:
		return w.CC
	case FactorRO:
		return w.RO
	default:
		return 0
	}
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.QTF + w.TM + w.PS + w.CC + w.RO
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w WeightSet) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range []float64{w.QTF, w.TM, w.PS, w.CC, w.RO} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}
