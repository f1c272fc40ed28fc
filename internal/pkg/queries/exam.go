package queries

const (
	GetExamByID = `SELECT id, name, cutoff, created_at, updated_at FROM exams WHERE id = $1`

	GetExamByName = `SELECT id, name, cutoff, created_at, updated_at FROM exams WHERE name = $1`
)
