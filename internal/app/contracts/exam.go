package contracts

import (
	"context"

	"psyexam-service/internal/app/models"
)

type ExamRepository interface {
	FindByID(ctx context.Context, examID string) (*models.Exam, error)
	FindByName(ctx context.Context, name string) (*models.Exam, error)
}
