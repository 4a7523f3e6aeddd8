package scoring

// Factor identifies one of the five top-level ranking dimensions.
type Factor string

const (
	FactorQTF Factor = "QTF" // Quality of Teaching Faculty
	FactorTM  Factor = "TM"  // Teaching Methods
	FactorPS  Factor = "PS"  // Placement Services
	FactorCC  Factor = "CC"  // Campus Culture
	FactorRO  Factor = "RO"  // Research Opportunities
)

// Factors lists the five dimensions in display order.
var Factors = []Factor{FactorQTF, FactorTM, FactorPS, FactorCC, FactorRO}

// FactorResult captures one factor's raw score together with the normalized
// sub-metric scores that produced it.
type FactorResult struct {
	Factor    Factor             `json:"factor"`
	Score     float64            `json:"score"`
	SubScores map[string]float64 `json:"sub_scores"`
}

// --- Individual factor calculators ---
//
// Each calculator normalizes its sub-metrics to [0,10] and combines them with
// fixed local weights summing to 1.0 within the factor.

// TeachingFacultyFactor scores Quality of Teaching Faculty:
// expertise .40, clarity .30, approachability .30.
func TeachingFacultyFactor(in *Inputs, ref *Reference) FactorResult {
	expertise := ScaleLinear(in.HIndex, RangeHIndex.Min, RangeHIndex.Max)
	clarity := SurveyAdjust(in.Clarity)
	approachability := PercentileRank(in.Approachability, ref.Approachability)

	score := 0.40*expertise + 0.30*clarity + 0.30*approachability
	return FactorResult{
		Factor: FactorQTF,
		Score:  score,
		SubScores: map[string]float64{
			"expertise":       expertise,
			"clarity":         clarity,
			"approachability": approachability,
		},
	}
}

// TeachingMethodsFactor scores Teaching Methods: lecture .30, discussion .40,
// practical .30. Inputs arrive pre-scaled to [0,10], so this is a weighted
// passthrough.
func TeachingMethodsFactor(in *Inputs) FactorResult {
	score := 0.30*in.LectureEffectiveness + 0.40*in.DiscussionBased + 0.30*in.PracticalSessions
	return FactorResult{
		Factor: FactorTM,
		Score:  score,
		SubScores: map[string]float64{
			"lecture":    in.LectureEffectiveness,
			"discussion": in.DiscussionBased,
			"practical":  in.PracticalSessions,
		},
	}
}

// PlacementFactor scores Placement Services: placement .30, employer .20,
// industry .20, alumni salary .15, entrepreneurial .15.
func PlacementFactor(in *Inputs, ref *Reference) FactorResult {
	placement := PercentileRank(in.PlacementRate, ref.PlacementRate)
	employer := SurveyAdjust(in.EmployerReputation)
	industry := ScaleLinear(in.IndustryPartnerships, RangePartnerships.Min, RangePartnerships.Max)
	alumni := PercentileRank(in.AlumniSalary, ref.AlumniSalary)
	entrepreneurial := ScaleLinear(in.Ventures, RangeVentures.Min, RangeVentures.Max)

	score := 0.30*placement + 0.20*employer + 0.20*industry + 0.15*alumni + 0.15*entrepreneurial
	return FactorResult{
		Factor: FactorPS,
		Score:  score,
		SubScores: map[string]float64{
			"placement":       placement,
			"employer":        employer,
			"industry":        industry,
			"alumni_salary":   alumni,
			"entrepreneurial": entrepreneurial,
		},
	}
}

// CampusCultureFactor scores Campus Culture: inclusion .30, representation
// .20, engagement .20, retention .15, cultural competency .15. All but the
// inclusion survey arrive pre-scaled to [0,10].
func CampusCultureFactor(in *Inputs) FactorResult {
	inclusion := SurveyAdjust(in.InclusionIndex)

	score := 0.30*inclusion + 0.20*in.Representation + 0.20*in.StudentEngagement +
		0.15*in.DiverseRetention + 0.15*in.CulturalCompetency
	return FactorResult{
		Factor: FactorCC,
		Score:  score,
		SubScores: map[string]float64{
			"inclusion":      inclusion,
			"representation": in.Representation,
			"engagement":     in.StudentEngagement,
			"retention":      in.DiverseRetention,
			"cultural":       in.CulturalCompetency,
		},
	}
}

// ResearchFactor scores Research Opportunities: expenditure .20, phd .15,
// output .25, lab .15, funding .15, mentorship .10.
func ResearchFactor(in *Inputs, ref *Reference) FactorResult {
	expenditure := ScaleLinear(in.ResearchExpenditure, RangeExpenditure.Min, RangeExpenditure.Max)
	phd := ScaleLinear(in.PhDConferred, RangePhDConferred.Min, RangePhDConferred.Max)
	output := PercentileRank(in.ResearchOutputFWCI, ref.FWCI)
	lab := SurveyAdjust(in.LabAccessibility)
	funding := ScaleLinear(in.FundingPerStudent, RangeFunding.Min, RangeFunding.Max)
	mentorship := SurveyAdjust(in.MentorshipPrograms)

	score := 0.20*expenditure + 0.15*phd + 0.25*output + 0.15*lab + 0.15*funding + 0.10*mentorship
	return FactorResult{
		Factor: FactorRO,
		Score:  score,
		SubScores: map[string]float64{
			"expenditure": expenditure,
			"phd":         phd,
			"output":      output,
			"lab":         lab,
			"funding":     funding,
			"mentorship":  mentorship,
		},
	}
}
