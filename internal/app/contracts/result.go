package contracts

import (
	"context"

	"psyexam-service/internal/app/models"
	"psyexam-service/internal/pkg/dto/requests"
	"psyexam-service/internal/pkg/dto/responses"
)

type ResultUsecase interface {
	CreateResult(ctx context.Context, request *requests.CreateResult) (*responses.Result, error)
	FindResultByID(ctx context.Context, resultID string) (*responses.Result, error)
}

type ResultRepository interface {
	Insert(ctx context.Context, result *models.Result) (*models.Result, error)
	FindByID(ctx context.Context, resultID string) (*models.Result, error)
}
