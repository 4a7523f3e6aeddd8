package scoring

// Normalization primitives. All three map a raw measurement onto the common
// [0,10] scale; none of them clamps, so a caller-supplied value outside the
// declared domain extrapolates rather than errors. Domain enforcement lives
// in Inputs.Validate.

// ScaleLinear maps value from [min,max] onto [0,10] linearly.
// A degenerate range (min == max) yields 0, not an error.
func ScaleLinear(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	return 10 * (value - min) / (max - min)
}

// PercentileRank returns the mid-rank percentile of value within ref, scaled
// to [0,10]: strictly-lesser elements count fully, ties count half. An empty
// reference set yields 0.
func PercentileRank(value float64, ref []float64) float64 {
	if len(ref) == 0 {
		return 0
	}
	var less, equal int
	for _, v := range ref {
		switch {
		case v < value:
			less++
		case v == value:
			equal++
		}
	}
	rank := (float64(less) + 0.5*float64(equal)) / float64(len(ref))
	return 10 * rank
}

// SurveyAdjust maps an average Likert rating (1–5) onto [0,10].
func SurveyAdjust(rating float64) float64 {
	return 2.5 * (rating - 1)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
