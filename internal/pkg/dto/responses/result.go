package responses

import "time"

type Result struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	ExamID    string    `json:"exam_id"`
	Items     []*int    `json:"items"`
	FreeTexts []string  `json:"free_texts,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
