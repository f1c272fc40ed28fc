package models

import (
	"time"

	"psyexam-service/internal/pkg/dto/responses"
)

// Result is one completed questionnaire instance. Items is ordered by item
// index; a nil entry means the item was left unanswered. Free texts are opaque
// to the scoring engine. Results are immutable once created.
type Result struct {
	ID        string    `bson:"_id"`
	PatientID string    `bson:"patient_id"`
	ExamID    string    `bson:"exam_id"`
	Items     []*int    `bson:"items"`
	FreeTexts []string  `bson:"free_texts"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (r Result) ConvertIntoResponse() responses.Result {
	return responses.Result{
		ID:        r.ID,
		PatientID: r.PatientID,
		ExamID:    r.ExamID,
		Items:     r.Items,
		FreeTexts: r.FreeTexts,
		CreatedAt: r.CreatedAt,
	}
}
