package api

import (
	"net/http"

	"github.com/campusmetrics/rankd/internal/scoring"
)

// Reference exposes the calibration constants behind the pipeline: declared
// input domains, fixed reference ranges, and the population settings. Admin
// only; useful when auditing a score.
// GET /api/v1/reference
func (h *EvaluationsHandler) Reference(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"input_domains": (&scoring.Inputs{}).Domains(),
		"reference_ranges": map[string]scoring.Range{
			"h_index":               scoring.RangeHIndex,
			"approachability":       scoring.RangeApproachability,
			"placement_rate":        scoring.RangePlacementRate,
			"industry_partnerships": scoring.RangePartnerships,
			"alumni_salary":         scoring.RangeAlumniSalary,
			"ventures":              scoring.RangeVentures,
			"research_expenditure":  scoring.RangeExpenditure,
			"phd_conferred":         scoring.RangePhDConferred,
			"research_output_fwci":  scoring.RangeFWCI,
			"funding_per_student":   scoring.RangeFunding,
			"factor_score":          scoring.RangeFactorScore,
		},
		"population_size": h.scoringCfg.PopulationSize,
		"seed":            h.scoringCfg.Seed,
		"resample":        h.scoringCfg.Resample,
	})
}
