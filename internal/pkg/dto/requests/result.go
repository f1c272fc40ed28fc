package requests

// CreateResult submits one completed questionnaire. Items are ordered by item
// index; a null entry marks an unanswered item. Answer bounds are exam
// specific and enforced by the scorer, not here. The item cap matches the
// widest registered exam (SDS, 20 items).
type CreateResult struct {
	PatientID string   `json:"patient_id" validate:"required"`
	ExamID    string   `json:"exam_id" validate:"required"`
	Items     []*int   `json:"items" validate:"required,max=20"`
	FreeTexts []string `json:"free_texts" validate:"omitempty,max=5,dive,max=2000"`
}
