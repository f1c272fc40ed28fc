package queries

const (
	GetPatientByID = `SELECT id, sex, birthdate, initial, created_at, updated_at FROM patients WHERE id = $1`
)
