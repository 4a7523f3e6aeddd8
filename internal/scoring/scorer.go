package scoring

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
)

// Default scoring configuration.
const (
	DefaultPopulationSize = 1000
	DefaultSeed           = 42
)

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithPopulationSize sets the size of each synthetic reference population.
func WithPopulationSize(n int) Option {
	return func(s *Scorer) {
		if n > 0 {
			s.popSize = n
		}
	}
}

// WithSeed seeds the reference-population generator. Two scorers built with
// the same seed and population size produce identical results for identical
// inputs.
func WithSeed(seed int64) Option {
	return func(s *Scorer) {
		s.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // synthetic reference data, not security material
	}
}

// WithResampling redraws every reference population on each evaluation,
// reproducing the original behavior of scoring against a changing peer
// cohort. Off by default: identical inputs then no longer give identical
// outputs.
func WithResampling() Option {
	return func(s *Scorer) {
		s.resample = true
	}
}

// WithReference substitutes a fixed reference set, bypassing generation
// entirely. Intended for tests that need exact percentile values.
func WithReference(ref *Reference) Option {
	return func(s *Scorer) {
		s.ref = ref
	}
}

// Result is the complete output of one scoring pass.
type Result struct {
	Weights         WeightSet                      `json:"weights"`
	SubScores       map[Factor]map[string]float64  `json:"sub_scores"`
	RawFactors      map[Factor]float64             `json:"raw_factors"`
	AdjustedFactors map[Factor]float64             `json:"adjusted_factors"`
	Base            float64                        `json:"base"`
	Bonus           float64                        `json:"bonus"`
	Penalty         float64                        `json:"penalty"`
	Score           float64                        `json:"score"`      // 0–10
	Score1000       float64                        `json:"score_1000"` // 0–1000
}

// Scorer runs the full pipeline: factor calculation, peer adjustment, and
// non-linear aggregation. Safe for concurrent use; resampling evaluations are
// serialized internally.
type Scorer struct {
	mu       sync.Mutex
	popSize  int
	resample bool
	rng      *rand.Rand
	ref      *Reference
	logger   *slog.Logger
}

// NewScorer creates a Scorer with deterministic reference populations drawn
// once from the default seed, unless options say otherwise.
func NewScorer(logger *slog.Logger, opts ...Option) *Scorer {
	s := &Scorer{
		popSize: DefaultPopulationSize,
		rng:     rand.New(rand.NewSource(DefaultSeed)), //nolint:gosec // synthetic reference data
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ref == nil {
		s.ref = NewReference(s.rng, s.popSize)
	}
	return s
}

// Evaluate validates the inputs and runs the full pipeline under the given
// weights. Invalid inputs or weights fail before any scoring happens.
func (s *Scorer) Evaluate(in *Inputs, w WeightSet) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid inputs: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}

	ref := s.reference()

	factors := []FactorResult{
		TeachingFacultyFactor(in, ref),
		TeachingMethodsFactor(in),
		PlacementFactor(in, ref),
		CampusCultureFactor(in),
		ResearchFactor(in, ref),
	}

	res := &Result{
		Weights:         w,
		SubScores:       make(map[Factor]map[string]float64, len(factors)),
		RawFactors:      make(map[Factor]float64, len(factors)),
		AdjustedFactors: make(map[Factor]float64, len(factors)),
	}
	for _, fr := range factors {
		res.SubScores[fr.Factor] = fr.SubScores
		res.RawFactors[fr.Factor] = fr.Score
		res.AdjustedFactors[fr.Factor] = PeerAdjust(fr.Score, ref.Factor[fr.Factor])
	}

	res.Base = BaseScore(res.AdjustedFactors, w)
	res.Bonus = SynergyBonus(res.AdjustedFactors)
	res.Penalty = WeaknessPenalty(res.AdjustedFactors)
	res.Score = FinalScore(res.Base, res.Bonus, res.Penalty)
	res.Score1000 = res.Score / 10 * MaxScore

	s.logger.Debug("evaluation complete",
		"base", res.Base,
		"bonus", res.Bonus,
		"penalty", res.Penalty,
		"score", res.Score,
	)
	return res, nil
}

// reference returns the population set for one evaluation, redrawing it
// first when resampling is on.
func (s *Scorer) reference() *Reference {
	if !s.resample {
		return s.ref
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ref = NewReference(s.rng, s.popSize)
	return s.ref
}
