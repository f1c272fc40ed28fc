package results

import (
	"context"
	"database/sql"
	"sync"

	"psyexam-service/internal/app/contracts"
	"psyexam-service/internal/app/models"
	"psyexam-service/internal/pkg/exceptions"
	"psyexam-service/internal/pkg/queries"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type resultPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	resultPostgresRepositoryInstance contracts.ResultRepository
	onceResultPostgresRepository     sync.Once
)

func NewResultPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ResultRepository {
	onceResultPostgresRepository.Do(func() {
		resultPostgresRepositoryInstance = &resultPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return resultPostgresRepositoryInstance
}

func (r *resultPostgresRepository) Insert(ctx context.Context, result *models.Result) (*models.Result, error) {
	items, err := json.Marshal(result.Items)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	freeTexts, err := json.Marshal(result.FreeTexts)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	_, err = r.DB.ExecContext(ctx, queries.InsertResult,
		result.ID,
		result.PatientID,
		result.ExamID,
		items,
		freeTexts,
		result.CreatedAt,
		result.UpdatedAt,
	)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return result, nil
}

func (r *resultPostgresRepository) FindByID(ctx context.Context, resultID string) (*models.Result, error) {
	var result models.Result
	var items, freeTexts []byte
	err := r.DB.QueryRowContext(ctx, queries.GetResultByID, resultID).Scan(
		&result.ID,
		&result.PatientID,
		&result.ExamID,
		&items,
		&freeTexts,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &result.Items); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
	}
	if len(freeTexts) > 0 {
		if err := json.Unmarshal(freeTexts, &result.FreeTexts); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
	}
	return &result, nil
}
