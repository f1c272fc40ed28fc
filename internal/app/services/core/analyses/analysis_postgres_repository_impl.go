package analyses

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"psyexam-service/internal/app/contracts"
	"psyexam-service/internal/app/models"
	"psyexam-service/internal/pkg/exceptions"
	"psyexam-service/internal/pkg/queries"

	"github.com/goccy/go-json"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const pqUniqueViolation = "23505"

type analysisPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	analysisPostgresRepositoryInstance contracts.AnalysisRepository
	onceAnalysisPostgresRepository     sync.Once
)

func NewAnalysisPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.AnalysisRepository {
	onceAnalysisPostgresRepository.Do(func() {
		analysisPostgresRepositoryInstance = &analysisPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return analysisPostgresRepositoryInstance
}

func (r *analysisPostgresRepository) Insert(ctx context.Context, analysis *models.AnalysisResult) (*models.AnalysisResult, error) {
	details, err := json.Marshal(analysis.Details)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	_, err = r.DB.ExecContext(ctx, queries.InsertAnalysis,
		analysis.ID,
		analysis.ResultID,
		analysis.PatientID,
		analysis.ExamID,
		analysis.TotalScore,
		analysis.SDSIndex,
		analysis.Severity,
		analysis.Interpretation,
		details,
		analysis.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, exceptions.ErrAnalysisAlreadyExists(err, analysis.ResultID)
		}
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return analysis, nil
}

func (r *analysisPostgresRepository) FindByID(ctx context.Context, analysisID string) (*models.AnalysisResult, error) {
	return r.findOne(ctx, queries.GetAnalysisByID, analysisID)
}

func (r *analysisPostgresRepository) FindByResultID(ctx context.Context, resultID string) (*models.AnalysisResult, error) {
	return r.findOne(ctx, queries.GetAnalysisByResultID, resultID)
}

func (r *analysisPostgresRepository) FindAllByPatientID(ctx context.Context, patientID string) ([]models.AnalysisResult, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAnalysesByPatientID, patientID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var analyses []models.AnalysisResult
	for rows.Next() {
		analysis, err := scanAnalysis(rows.Scan)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, *analysis)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return analyses, nil
}

func (r *analysisPostgresRepository) DeleteByID(ctx context.Context, analysisID string) error {
	_, err := r.DB.ExecContext(ctx, queries.DeleteAnalysisByID, analysisID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

func (r *analysisPostgresRepository) findOne(ctx context.Context, query, arg string) (*models.AnalysisResult, error) {
	row := r.DB.QueryRowContext(ctx, query, arg)
	analysis, err := scanAnalysis(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return analysis, nil
}

func scanAnalysis(scan func(dest ...interface{}) error) (*models.AnalysisResult, error) {
	var analysis models.AnalysisResult
	var details []byte
	err := scan(
		&analysis.ID,
		&analysis.ResultID,
		&analysis.PatientID,
		&analysis.ExamID,
		&analysis.TotalScore,
		&analysis.SDSIndex,
		&analysis.Severity,
		&analysis.Interpretation,
		&details,
		&analysis.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	if len(details) > 0 {
		if err := json.Unmarshal(details, &analysis.Details); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
	}
	return &analysis, nil
}
