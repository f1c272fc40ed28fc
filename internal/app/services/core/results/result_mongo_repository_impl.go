package results

import (
	"context"
	"sync"

	"psyexam-service/internal/app/contracts"
	"psyexam-service/internal/app/models"
	"psyexam-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const resultCollection = "results"

type resultMongoRepository struct {
	DB  *mongo.Database
	Log *zap.Logger
}

var (
	resultMongoRepositoryInstance contracts.ResultRepository
	onceResultMongoRepository     sync.Once
)

func NewResultMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.ResultRepository {
	onceResultMongoRepository.Do(func() {
		resultMongoRepositoryInstance = &resultMongoRepository{
			DB:  db,
			Log: logger,
		}
	})
	return resultMongoRepositoryInstance
}

func (r *resultMongoRepository) Insert(ctx context.Context, result *models.Result) (*models.Result, error) {
	_, err := r.DB.Collection(resultCollection).InsertOne(ctx, result)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result, nil
}

func (r *resultMongoRepository) FindByID(ctx context.Context, resultID string) (*models.Result, error) {
	var result models.Result
	err := r.DB.Collection(resultCollection).FindOne(ctx, bson.M{"_id": resultID}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &result, nil
}
