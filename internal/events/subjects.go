package events

const (
	StreamName   = "RANK_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectEvaluationCompleted(evaluationID string) string {
	return "rank.evaluation." + evaluationID + ".completed"
}

func SubjectEvaluationRejected(evaluationID string) string {
	return "rank.evaluation." + evaluationID + ".rejected"
}
