package contracts

import (
	"context"

	"psyexam-service/internal/app/models"
	"psyexam-service/internal/pkg/dto/responses"
)

type AnalysisUsecase interface {
	// AnalyzeResult ensures exactly one analysis exists for the result and
	// returns it. Subsequent calls for the same result are pure reads.
	AnalyzeResult(ctx context.Context, resultID string) (*responses.Analysis, error)
	FindByResultID(ctx context.Context, resultID string) (*responses.Analysis, error)
	FindAllByPatientID(ctx context.Context, patientID string) ([]responses.Analysis, error)
	DeleteByID(ctx context.Context, analysisID string) error
	ListExamDomains(ctx context.Context, examName string) ([]responses.ExamDomain, error)
}

type AnalysisRepository interface {
	// Insert persists the analysis under a unique constraint on result id and
	// surfaces a violation as a conflict error (exceptions.IsConflict).
	Insert(ctx context.Context, analysis *models.AnalysisResult) (*models.AnalysisResult, error)
	FindByID(ctx context.Context, analysisID string) (*models.AnalysisResult, error)
	FindByResultID(ctx context.Context, resultID string) (*models.AnalysisResult, error)
	FindAllByPatientID(ctx context.Context, patientID string) ([]models.AnalysisResult, error)
	DeleteByID(ctx context.Context, analysisID string) error
}
