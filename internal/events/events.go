package events

import "time"

type EvaluationCompletedEvent struct {
	EvaluationID string             `json:"evaluation_id"`
	Scheme       string             `json:"scheme"`
	Score        float64            `json:"score"`      // 0–10
	Score1000    float64            `json:"score_1000"` // 0–1000
	Factors      map[string]float64 `json:"factors,omitempty"`
	Timestamp    time.Time          `json:"timestamp"`
}

type EvaluationRejectedEvent struct {
	EvaluationID string    `json:"evaluation_id"`
	Reason       string    `json:"reason"`
	Timestamp    time.Time `json:"timestamp"`
}
