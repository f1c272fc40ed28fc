package queries

const (
	InsertResult = `INSERT INTO results (id, patient_id, exam_id, items, free_texts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	GetResultByID = `SELECT id, patient_id, exam_id, items, free_texts, created_at, updated_at
		FROM results WHERE id = $1`
)
