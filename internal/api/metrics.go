package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rankd_evaluations_total",
		Help: "Scoring evaluations by scheme and outcome.",
	}, []string{"scheme", "status"})

	evaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rankd_evaluation_duration_seconds",
		Help:    "Wall time of the scoring pipeline.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	})

	finalScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rankd_final_score",
		Help:    "Distribution of final scores on the 1000-point scale.",
		Buckets: prometheus.LinearBuckets(0, 100, 11),
	})
)
