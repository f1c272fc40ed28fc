package contracts

import "context"

// AnalysisCompletedEvent is published after the first successful scoring of a
// result. Delivery is best effort and never fails the originating request.
type AnalysisCompletedEvent struct {
	AnalysisID string `json:"analysis_id"`
	ResultID   string `json:"result_id"`
	PatientID  string `json:"patient_id"`
	ExamName   string `json:"exam_name"`
	TotalScore int    `json:"total_score"`
	Severity   string `json:"severity"`
}

type AnalysisEventPublisher interface {
	PublishAnalysisCompleted(ctx context.Context, event *AnalysisCompletedEvent) error
}
