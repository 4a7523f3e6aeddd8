package scoring

import "math/rand"

// Range is an inclusive reference interval used for linear scaling and for
// drawing uniform reference populations. These are fixed calibration
// constants, not statistics over real peer data.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Reference ranges per sub-metric.
var (
	RangeHIndex          = Range{1, 50}
	RangeApproachability = Range{0, 10}
	RangePlacementRate   = Range{0.5, 0.99}
	RangePartnerships    = Range{0, 100}
	RangeAlumniSalary    = Range{50000, 200000}
	RangeVentures        = Range{0, 20}
	RangeExpenditure     = Range{1000, 50000}
	RangePhDConferred    = Range{10, 500}
	RangeFWCI            = Range{0.1, 5.0}
	RangeFunding         = Range{0, 10000}
	RangeFactorScore     = Range{0, 10}
)

// Reference bundles every synthetic population the pipeline ranks against:
// one per percentile-normalized sub-metric, plus one per factor for the peer
// adjustment step.
type Reference struct {
	Approachability []float64
	PlacementRate   []float64
	AlumniSalary    []float64
	FWCI            []float64
	Factor          map[Factor][]float64
}

// NewReference draws all reference populations from rng, size samples each,
// uniform over the metric's range.
func NewReference(rng *rand.Rand, size int) *Reference {
	ref := &Reference{
		Approachability: uniformSamples(rng, RangeApproachability, size),
		PlacementRate:   uniformSamples(rng, RangePlacementRate, size),
		AlumniSalary:    uniformSamples(rng, RangeAlumniSalary, size),
		FWCI:            uniformSamples(rng, RangeFWCI, size),
		Factor:          make(map[Factor][]float64, len(Factors)),
	}
	for _, f := range Factors {
		ref.Factor[f] = uniformSamples(rng, RangeFactorScore, size)
	}
	return ref
}

func uniformSamples(rng *rand.Rand, r Range, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Min + rng.Float64()*(r.Max-r.Min)
	}
	return out
}
