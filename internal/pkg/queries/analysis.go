package queries

const (
	InsertAnalysis = `INSERT INTO analysis_results
		(id, result_id, patient_id, exam_id, total_score, sds_index, severity, interpretation, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	GetAnalysisByID = `SELECT id, result_id, patient_id, exam_id, total_score, sds_index, severity, interpretation, details, created_at
		FROM analysis_results WHERE id = $1`

	GetAnalysisByResultID = `SELECT id, result_id, patient_id, exam_id, total_score, sds_index, severity, interpretation, details, created_at
		FROM analysis_results WHERE result_id = $1`

	GetAnalysesByPatientID = `SELECT id, result_id, patient_id, exam_id, total_score, sds_index, severity, interpretation, details, created_at
		FROM analysis_results WHERE patient_id = $1 ORDER BY created_at DESC`

	DeleteAnalysisByID = `DELETE FROM analysis_results WHERE id = $1`
)
