package exams

import (
	"context"
	"database/sql"
	"sync"

	"psyexam-service/internal/app/contracts"
	"psyexam-service/internal/app/models"
	"psyexam-service/internal/pkg/exceptions"
	"psyexam-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type examPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	examPostgresRepositoryInstance contracts.ExamRepository
	onceExamPostgresRepository     sync.Once
)

func NewExamPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ExamRepository {
	onceExamPostgresRepository.Do(func() {
		examPostgresRepositoryInstance = &examPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return examPostgresRepositoryInstance
}

func (r *examPostgresRepository) FindByID(ctx context.Context, examID string) (*models.Exam, error) {
	return r.findOne(ctx, queries.GetExamByID, examID)
}

func (r *examPostgresRepository) FindByName(ctx context.Context, name string) (*models.Exam, error) {
	return r.findOne(ctx, queries.GetExamByName, name)
}

func (r *examPostgresRepository) findOne(ctx context.Context, query, arg string) (*models.Exam, error) {
	var exam models.Exam
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&exam.ID,
		&exam.Name,
		&exam.Cutoff,
		&exam.CreatedAt,
		&exam.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &exam, nil
}
