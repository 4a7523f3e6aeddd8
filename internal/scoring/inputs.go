package scoring

import (
	"errors"
	"fmt"
)

// Inputs carries the 21 raw sub-metric values for one institution, grouped by
// factor. Every field has a declared domain (the bounds the original intake
// form enforced); Validate checks them all so the normalization formulas
// downstream never have to.
type Inputs struct {
	// Quality of Teaching Faculty
	HIndex          float64 `json:"h_index"`         // 1–50
	Clarity         float64 `json:"clarity"`         // Likert 1–5
	Approachability float64 `json:"approachability"` // 0–10

	// Teaching Methods (pre-scaled to 0–10)
	LectureEffectiveness float64 `json:"lecture_effectiveness"`
	DiscussionBased      float64 `json:"discussion_based"`
	PracticalSessions    float64 `json:"practical_sessions"`

	// Placement Services
	PlacementRate        float64 `json:"placement_rate"`        // 0–1
	EmployerReputation   float64 `json:"employer_reputation"`   // Likert 1–5
	IndustryPartnerships float64 `json:"industry_partnerships"` // 0–100
	AlumniSalary         float64 `json:"alumni_salary"`         // 0–300000
	Ventures             float64 `json:"ventures"`              // 0–50

	// Campus Culture
	InclusionIndex     float64 `json:"inclusion_index"` // Likert 1–5
	Representation     float64 `json:"representation"`  // 0–10
	StudentEngagement  float64 `json:"student_engagement"`
	DiverseRetention   float64 `json:"diverse_retention"`
	CulturalCompetency float64 `json:"cultural_competency"`

	// Research Opportunities
	ResearchExpenditure float64 `json:"research_expenditure"` // 0–100000
	PhDConferred        float64 `json:"phd_conferred"`        // 0–1000
	ResearchOutputFWCI  float64 `json:"research_output_fwci"` // 0–10
	LabAccessibility    float64 `json:"lab_accessibility"`    // Likert 1–5
	FundingPerStudent   float64 `json:"funding_per_student"`  // 0–20000
	MentorshipPrograms  float64 `json:"mentorship_programs"`  // Likert 1–5
}

// RangeError reports a sub-metric outside its declared domain.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %g outside [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

type fieldDomain struct {
	name  string
	value float64
	min   float64
	max   float64
}

func (in *Inputs) domains() []fieldDomain {
	return []fieldDomain{
		{"h_index", in.HIndex, 1, 50},
		{"clarity", in.Clarity, 1, 5},
		{"approachability", in.Approachability, 0, 10},
		{"lecture_effectiveness", in.LectureEffectiveness, 0, 10},
		{"discussion_based", in.DiscussionBased, 0, 10},
		{"practical_sessions", in.PracticalSessions, 0, 10},
		{"placement_rate", in.PlacementRate, 0, 1},
		{"employer_reputation", in.EmployerReputation, 1, 5},
		{"industry_partnerships", in.IndustryPartnerships, 0, 100},
		{"alumni_salary", in.AlumniSalary, 0, 300000},
		{"ventures", in.Ventures, 0, 50},
		{"inclusion_index", in.InclusionIndex, 1, 5},
		{"representation", in.Representation, 0, 10},
		{"student_engagement", in.StudentEngagement, 0, 10},
		{"diverse_retention", in.DiverseRetention, 0, 10},
		{"cultural_competency", in.CulturalCompetency, 0, 10},
		{"research_expenditure", in.ResearchExpenditure, 0, 100000},
		{"phd_conferred", in.PhDConferred, 0, 1000},
		{"research_output_fwci", in.ResearchOutputFWCI, 0, 10},
		{"lab_accessibility", in.LabAccessibility, 1, 5},
		{"funding_per_student", in.FundingPerStudent, 0, 20000},
		{"mentorship_programs", in.MentorshipPrograms, 1, 5},
	}
}

// Validate reports every field outside its declared domain, joined into a
// single error, or nil if all 21 inputs are in range.
func (in *Inputs) Validate() error {
	var errs []error
	for _, d := range in.domains() {
		if d.value < d.min || d.value > d.max {
			errs = append(errs, &RangeError{Field: d.name, Value: d.value, Min: d.min, Max: d.max})
		}
	}
	return errors.Join(errs...)
}

// Domains returns the declared input domains keyed by field name, for the
// reference endpoint.
func (in *Inputs) Domains() map[string]Range {
	doms := in.domains()
	out := make(map[string]Range, len(doms))
	for _, d := range doms {
		out[d.name] = Range{Min: d.min, Max: d.max}
	}
	return out
}
