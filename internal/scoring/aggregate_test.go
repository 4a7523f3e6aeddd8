package scoring

import (
	"math"
	"testing"
)

func adjustedMap(qtf, tm, ps, cc, ro float64) map[Factor]float64 {
	return map[Factor]float64{
		FactorQTF: qtf, FactorTM: tm, FactorPS: ps, FactorCC: cc, FactorRO: ro,
	}
}

func TestPeerAdjust(t *testing.T) {
	// raw 5 against {1,2,3,4}: augmented rank = (4 + 0.5)/5 = 0.9 → 9.0
	got := PeerAdjust(5, []float64{1, 2, 3, 4})
	want := 0.7*5 + 0.3*9.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got %f, want %f", got, want)
	}
}

func TestPeerAdjustEmptyPopulation(t *testing.T) {
	// Only the score itself in the population: mid-rank 0.5 → 5.0
	got := PeerAdjust(8, nil)
	want := 0.7*8 + 0.3*5.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got %f, want %f", got, want)
	}
}

func TestPeerAdjustStaysInRange(t *testing.T) {
	pop := []float64{0, 2.5, 5, 7.5, 10}
	for raw := 0.0; raw <= 10; raw += 0.5 {
		adj := PeerAdjust(raw, pop)
		if adj < 0 || adj > 10 {
			t.Errorf("PeerAdjust(%f) = %f outside [0,10]", raw, adj)
		}
	}
}

func TestBaseScoreConvexCombination(t *testing.T) {
	weights := []WeightSet{DefaultWeights(), ResearchFocusedWeights(), TeachingFocusedWeights()}

	t.Run("uniform scores pass through", func(t *testing.T) {
		for _, w := range weights {
			got := BaseScore(adjustedMap(6, 6, 6, 6, 6), w)
			if math.Abs(got-6) > 1e-9 {
				t.Errorf("uniform 6 gave base %f", got)
			}
		}
	})

	t.Run("bounded by min and max factor", func(t *testing.T) {
		adjusted := adjustedMap(2, 9, 4, 7, 5)
		for _, w := range weights {
			got := BaseScore(adjusted, w)
			if got < 2 || got > 9 {
				t.Errorf("base %f outside [2,9]", got)
			}
		}
	})

	t.Run("weighted sum", func(t *testing.T) {
		w := DefaultWeights()
		got := BaseScore(adjustedMap(8, 6, 7, 5, 9), w)
		want := 0.25*8 + 0.20*6 + 0.20*7 + 0.15*5 + 0.20*9
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("got %f, want %f", got, want)
		}
	})
}

func TestSynergyBonus(t *testing.T) {
	tests := []struct {
		name     string
		adjusted map[Factor]float64
		want     float64
	}{
		{"no high factors", adjustedMap(5, 5, 5, 5, 5), 0},
		{"two high factors", adjustedMap(8, 9, 5, 5, 5), 0},
		{"exactly three high", adjustedMap(8, 8, 8, 0, 0), 0.5 * (8 - 7)},
		{"top three of four", adjustedMap(7.5, 8, 9, 10, 2), 0.5 * (9 - 7)}, // mean of 10,9,8
		{"barely above threshold", adjustedMap(7.0001, 7.0001, 7.0001, 0, 0), 0.5 * 0.0001},
		{"exactly 7 does not count", adjustedMap(7, 7, 7, 7, 7), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SynergyBonus(tt.adjusted)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %f, want %f", got, tt.want)
			}
			if got < 0 {
				t.Errorf("bonus must be non-negative, got %f", got)
			}
		})
	}
}

func TestWeaknessPenalty(t *testing.T) {
	tests := []struct {
		name     string
		adjusted map[Factor]float64
		want     float64
	}{
		{"none failing", adjustedMap(5, 5, 5, 5, 5), 0},
		{"one failing", adjustedMap(2.9, 5, 5, 5, 5), 0.2},
		{"three failing", adjustedMap(2, 2, 2, 10, 10), 0.6},
		{"all failing", adjustedMap(0, 1, 2, 2.5, 2.9), 1.0},
		{"exactly 3 does not fail", adjustedMap(3, 3, 3, 3, 3), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeaknessPenalty(tt.adjusted)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestFinalScoreClamped(t *testing.T) {
	if got := FinalScore(9.8, 1.5, 0); got != 10 {
		t.Errorf("expected clamp to 10, got %f", got)
	}
	if got := FinalScore(0.1, 0, 1.0); got != 0 {
		t.Errorf("expected clamp to 0, got %f", got)
	}
	if got := FinalScore(5, 0.5, 0.2); math.Abs(got-5.3) > 1e-9 {
		t.Errorf("got %f, want 5.3", got)
	}
}
