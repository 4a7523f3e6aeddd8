package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/campusmetrics/rankd/internal/config"
	"github.com/campusmetrics/rankd/internal/events"
	"github.com/campusmetrics/rankd/internal/scoring"
)

type EvaluationsHandler struct {
	scorer        *scoring.Scorer
	events        events.Client
	scoringCfg    config.ScoringConfig
	defaultScheme scoring.Scheme
	customDefault config.CustomWeights
	logger        *slog.Logger
}

func NewEvaluationsHandler(s *scoring.Scorer, ev events.Client, cfg *config.Config, logger *slog.Logger) *EvaluationsHandler {
	return &EvaluationsHandler{
		scorer:        s,
		events:        ev,
		scoringCfg:    cfg.Scoring,
		defaultScheme: scoring.Scheme(cfg.Scoring.DefaultScheme),
		customDefault: cfg.Scoring.CustomWeights,
		logger:        logger,
	}
}

// CustomWeightsRequest carries the five integer percentages of a custom
// weighting. They need not sum to 100; the response warns when they did not.
type CustomWeightsRequest struct {
	QTF int `json:"qtf"`
	TM  int `json:"tm"`
	PS  int `json:"ps"`
	CC  int `json:"cc"`
	RO  int `json:"ro"`
}

type EvaluateRequest struct {
	Scheme        string                `json:"scheme,omitempty"`
	CustomWeights *CustomWeightsRequest `json:"custom_weights,omitempty"`
	Inputs        scoring.Inputs        `json:"inputs"`
}

type EvaluateResponse struct {
	EvaluationID string   `json:"evaluation_id"`
	Scheme       string   `json:"scheme"`
	Warnings     []string `json:"warnings,omitempty"`
	*scoring.Result
}

// Evaluate scores one institution.
// POST /api/v1/evaluations
func (h *EvaluationsHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	scheme := scoring.Scheme(req.Scheme)
	if scheme == "" {
		scheme = h.defaultScheme
	}

	weights, warnings, err := h.resolveWeights(scheme, req.CustomWeights)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	evaluationID := uuid.New()

	result, err := h.scorer.Evaluate(&req.Inputs, weights)
	if err != nil {
		evaluationsTotal.WithLabelValues(string(scheme), "rejected").Inc()
		if h.events != nil {
			_ = h.events.Publish(events.SubjectEvaluationRejected(evaluationID.String()), events.EvaluationRejectedEvent{
				EvaluationID: evaluationID.String(),
				Reason:       err.Error(),
				Timestamp:    time.Now().UTC(),
			})
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	evaluationsTotal.WithLabelValues(string(scheme), "completed").Inc()
	evaluationDuration.Observe(time.Since(start).Seconds())
	finalScore.Observe(result.Score1000)

	if h.events != nil {
		factors := make(map[string]float64, len(result.AdjustedFactors))
		for f, v := range result.AdjustedFactors {
			factors[string(f)] = v
		}
		_ = h.events.Publish(events.SubjectEvaluationCompleted(evaluationID.String()), events.EvaluationCompletedEvent{
			EvaluationID: evaluationID.String(),
			Scheme:       string(scheme),
			Score:        result.Score,
			Score1000:    result.Score1000,
			Factors:      factors,
			Timestamp:    time.Now().UTC(),
		})
	}

	h.logger.Info("evaluation scored",
		"evaluation_id", evaluationID,
		"scheme", scheme,
		"score_1000", result.Score1000,
	)

	writeJSON(w, http.StatusOK, EvaluateResponse{
		EvaluationID: evaluationID.String(),
		Scheme:       string(scheme),
		Warnings:     warnings,
		Result:       result,
	})
}

// resolveWeights turns a scheme selection into an effective WeightSet.
// Custom percentages fall back to the configured defaults when the request
// omits them.
func (h *EvaluationsHandler) resolveWeights(scheme scoring.Scheme, custom *CustomWeightsRequest) (scoring.WeightSet, []string, error) {
	if scheme != scoring.SchemeCustom {
		w, ok := scoring.PresetWeights(scheme)
		if !ok {
			return scoring.WeightSet{}, nil, fmt.Errorf("unknown scheme %q", scheme)
		}
		return w, nil, nil
	}

	cw := CustomWeightsRequest{
		QTF: h.customDefault.QTF,
		TM:  h.customDefault.TM,
		PS:  h.customDefault.PS,
		CC:  h.customDefault.CC,
		RO:  h.customDefault.RO,
	}
	if custom != nil {
		cw = *custom
	}

	w, renormalized, err := scoring.CustomWeights(cw.QTF, cw.TM, cw.PS, cw.CC, cw.RO)
	if err != nil {
		return scoring.WeightSet{}, nil, fmt.Errorf("custom weights: %w", err)
	}

	var warnings []string
	if renormalized {
		total := cw.QTF + cw.TM + cw.PS + cw.CC + cw.RO
		warnings = append(warnings, fmt.Sprintf(
			"custom weights sum to %d%%; renormalized to 100%% preserving ratios", total))
	}
	return w, warnings, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
