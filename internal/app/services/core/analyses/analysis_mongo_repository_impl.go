package analyses

import (
	"context"
	"sync"

	"psyexam-service/internal/app/contracts"
	"psyexam-service/internal/app/models"
	"psyexam-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const analysisCollection = "analysis_results"

type analysisMongoRepository struct {
	DB  *mongo.Database
	Log *zap.Logger
}

var (
	analysisMongoRepositoryInstance contracts.AnalysisRepository
	onceAnalysisMongoRepository     sync.Once
)

func NewAnalysisMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.AnalysisRepository {
	onceAnalysisMongoRepository.Do(func() {
		instance := &analysisMongoRepository{
			DB:  db,
			Log: logger,
		}
		instance.ensureIndexes(context.Background())
		analysisMongoRepositoryInstance = instance
	})
	return analysisMongoRepositoryInstance
}

// ensureIndexes creates the unique index on result_id that backs the
// at-most-once scoring guarantee.
func (r *analysisMongoRepository) ensureIndexes(ctx context.Context) {
	_, err := r.DB.Collection(analysisCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "result_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		r.Log.Error("failed to create unique index on analysis_results.result_id", zap.Error(err))
	}
}

func (r *analysisMongoRepository) Insert(ctx context.Context, analysis *models.AnalysisResult) (*models.AnalysisResult, error) {
	_, err := r.DB.Collection(analysisCollection).InsertOne(ctx, analysis)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrAnalysisAlreadyExists(err, analysis.ResultID)
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return analysis, nil
}

func (r *analysisMongoRepository) FindByID(ctx context.Context, analysisID string) (*models.AnalysisResult, error) {
	return r.findOne(ctx, bson.M{"_id": analysisID})
}

func (r *analysisMongoRepository) FindByResultID(ctx context.Context, resultID string) (*models.AnalysisResult, error) {
	return r.findOne(ctx, bson.M{"result_id": resultID})
}

func (r *analysisMongoRepository) FindAllByPatientID(ctx context.Context, patientID string) ([]models.AnalysisResult, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.DB.Collection(analysisCollection).Find(ctx, bson.M{"patient_id": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var analyses []models.AnalysisResult
	if err := cursor.All(ctx, &analyses); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return analyses, nil
}

func (r *analysisMongoRepository) DeleteByID(ctx context.Context, analysisID string) error {
	_, err := r.DB.Collection(analysisCollection).DeleteOne(ctx, bson.M{"_id": analysisID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *analysisMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.AnalysisResult, error) {
	var analysis models.AnalysisResult
	err := r.DB.Collection(analysisCollection).FindOne(ctx, filter).Decode(&analysis)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &analysis, nil
}
