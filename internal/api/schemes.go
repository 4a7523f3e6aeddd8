package api

import (
	"net/http"

	"github.com/campusmetrics/rankd/internal/scoring"
)

// Schemes returns the preset weight distributions plus the configured custom
// percentages, so callers can render a weighting selector.
// GET /api/v1/schemes
func (h *EvaluationsHandler) Schemes(w http.ResponseWriter, r *http.Request) {
	type schemeInfo struct {
		Scheme  string            `json:"scheme"`
		Weights scoring.WeightSet `json:"weights"`
	}

	var out []schemeInfo
	for _, s := range []scoring.Scheme{scoring.SchemeDefault, scoring.SchemeResearch, scoring.SchemeTeaching} {
		weights, _ := scoring.PresetWeights(s)
		out = append(out, schemeInfo{Scheme: string(s), Weights: weights})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"default_scheme": string(h.defaultScheme),
		"presets":        out,
		"custom_default": h.customDefault,
	})
}
