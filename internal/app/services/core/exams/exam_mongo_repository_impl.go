package exams

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

const examCollection = "exams"

type examMongoRepository struct {
	DB  *mongo.Database
	Log *zap.Logger
}

var (
	examMongoRepositoryInstance contracts.ExamRepository
	onceExamMongoRepository     sync.Once
)

func NewExamMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.ExamRepository {
	onceExamMongoRepository.Do(func() {
		examMongoRepositoryInstance = &examMongoRepository{
			DB:  db,
			Log: logger,
		}
	})
	return examMongoRepositoryInstance
}

func (r *examMongoRepository) FindByID(ctx context.Context, examID string) (*models.Exam, error) {
	return r.findOne(ctx, bson.M{"_id": examID})
}

func (r *examMongoRepository) FindByName(ctx context.Context, name string) (*models.Exam, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *examMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Exam, error) {
	var exam models.Exam
	err := r.DB.Collection(examCollection).FindOne(ctx, filter).Decode(&exam)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &exam, nil
}
