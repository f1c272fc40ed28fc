package analyses

import (
	"context"
	"fmt"
	"sync"
	"time"

	"psyexam-service/internal/app/contracts"
	"psyexam-service/internal/app/models"
	"psyexam-service/internal/app/services/core/analyzers"
	"psyexam-service/internal/pkg/constvars"
	"psyexam-service/internal/pkg/dto/responses"
	"psyexam-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type analysisUsecase struct {
	AnalysisRepository contracts.AnalysisRepository
	ResultRepository   contracts.ResultRepository
	ExamRepository     contracts.ExamRepository
	PatientRepository  contracts.PatientRepository
	RedisRepository    contracts.RedisRepository
	EventPublisher     contracts.AnalysisEventPublisher
	Registry           *analyzers.Registry
	CacheTTL           time.Duration
	Log                *zap.Logger
}

var (
	analysisUsecaseInstance contracts.AnalysisUsecase
	onceAnalysisUsecase     sync.Once
)

func NewAnalysisUsecase(
	analysisRepository contracts.AnalysisRepository,
	resultRepository contracts.ResultRepository,
	examRepository contracts.ExamRepository,
	patientRepository contracts.PatientRepository,
	redisRepository contracts.RedisRepository,
	eventPublisher contracts.AnalysisEventPublisher,
	registry *analyzers.Registry,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.AnalysisUsecase {
	onceAnalysisUsecase.Do(func() {
		analysisUsecaseInstance = &analysisUsecase{
			AnalysisRepository: analysisRepository,
			ResultRepository:   resultRepository,
			ExamRepository:     examRepository,
			PatientRepository:  patientRepository,
			RedisRepository:    redisRepository,
			EventPublisher:     eventPublisher,
			Registry:           registry,
			CacheTTL:           cacheTTL,
			Log:                logger,
		}
	})
	return analysisUsecaseInstance
}

// AnalyzeResult guarantees at-most-once scoring per result id. The uniqueness
// constraint lives at the persistence boundary, not in process, so concurrent
// callers across instances converge on the row the first writer inserted.
func (uc *analysisUsecase) AnalyzeResult(ctx context.Context, resultID string) (*responses.Analysis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("analysisUsecase.AnalyzeResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, resultID),
	)

	if cached := uc.findCached(ctx, resultID); cached != nil {
		return cached, nil
	}

	existing, err := uc.AnalysisRepository.FindByResultID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		uc.cache(ctx, existing)
		response := existing.ConvertIntoResponse()
		return &response, nil
	}

	result, err := uc.ResultRepository.FindByID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, exceptions.ErrResultNotFound(resultID)
	}

	exam, err := uc.ExamRepository.FindByID(ctx, result.ExamID)
	if err != nil {
		return nil, err
	}
	if exam == nil {
		return nil, exceptions.ErrExamNotFound(result.ExamID)
	}

	scorer, ok := uc.Registry.Resolve(exam.Name)
	if !ok {
		return nil, exceptions.ErrAnalyzerNotFound(exam.Name)
	}

	scored, notices, err := scorer.Score(analyzers.Answers(result.Items))
	if err != nil {
		return nil, exceptions.ErrScoringFailed(err)
	}
	for _, notice := range notices {
		uc.Log.Warn("analysisUsecase.AnalyzeResult data quality notice",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResultIDKey, resultID),
			zap.String(constvars.LoggingExamNameKey, exam.Name),
			zap.Int(constvars.LoggingItemIndexKey, notice.Item),
			zap.String("notice", notice.Message),
		)
	}

	analysis := &models.AnalysisResult{
		ID:             uuid.NewString(),
		ResultID:       result.ID,
		PatientID:      result.PatientID,
		ExamID:         result.ExamID,
		TotalScore:     scored.TotalScore,
		SDSIndex:       scored.Index,
		Severity:       scored.Severity,
		Interpretation: scored.Interpretation,
		Details:        buildDetails(scored),
		CreatedAt:      time.Now(),
	}

	inserted, err := uc.AnalysisRepository.Insert(ctx, analysis)
	if err != nil {
		if exceptions.IsConflict(err) {
			// A concurrent writer won the race. Return its row; this is the
			// at-most-once guarantee, not an error.
			uc.Log.Info("analysisUsecase.AnalyzeResult lost insert race, returning existing analysis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResultIDKey, resultID),
			)
			winner, findErr := uc.AnalysisRepository.FindByResultID(ctx, resultID)
			if findErr != nil {
				return nil, findErr
			}
			if winner == nil {
				return nil, err
			}
			response := winner.ConvertIntoResponse()
			return &response, nil
		}
		return nil, err
	}

	uc.cache(ctx, inserted)
	uc.publishCompleted(ctx, inserted, exam.Name)

	uc.Log.Info("analysisUsecase.AnalyzeResult scored result",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, resultID),
		zap.String(constvars.LoggingAnalysisIDKey, inserted.ID),
		zap.String(constvars.LoggingExamNameKey, exam.Name),
		zap.Int("total_score", inserted.TotalScore),
		zap.String("severity", inserted.Severity),
	)

	response := inserted.ConvertIntoResponse()
	return &response, nil
}

func (uc *analysisUsecase) FindByResultID(ctx context.Context, resultID string) (*responses.Analysis, error) {
	if cached := uc.findCached(ctx, resultID); cached != nil {
		return cached, nil
	}

	analysis, err := uc.AnalysisRepository.FindByResultID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, exceptions.ErrAnalysisNotFound(resultID)
	}
	uc.cache(ctx, analysis)
	response := analysis.ConvertIntoResponse()
	return &response, nil
}

func (uc *analysisUsecase) FindAllByPatientID(ctx context.Context, patientID string) ([]responses.Analysis, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(patientID)
	}

	analyses, err := uc.AnalysisRepository.FindAllByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	results := make([]responses.Analysis, 0, len(analyses))
	for _, analysis := range analyses {
		response := analysis.ConvertIntoResponse()
		if exam, err := uc.ExamRepository.FindByID(ctx, analysis.ExamID); err == nil && exam != nil {
			response.ExamName = exam.Name
		}
		results = append(results, response)
	}
	return results, nil
}

func (uc *analysisUsecase) DeleteByID(ctx context.Context, analysisID string) error {
	analysis, err := uc.AnalysisRepository.FindByID(ctx, analysisID)
	if err != nil {
		return err
	}
	if analysis == nil {
		return exceptions.ErrAnalysisNotFound(analysisID)
	}

	if err := uc.AnalysisRepository.DeleteByID(ctx, analysisID); err != nil {
		return err
	}

	cacheKey := fmt.Sprintf(constvars.RedisKeyAnalysisByResultFormat, analysis.ResultID)
	if err := uc.RedisRepository.Delete(ctx, cacheKey); err != nil {
		uc.Log.Warn("analysisUsecase.DeleteByID failed to invalidate cache",
			zap.String(constvars.LoggingAnalysisIDKey, analysisID),
			zap.Error(err),
		)
	}
	return nil
}

func (uc *analysisUsecase) ListExamDomains(ctx context.Context, examName string) ([]responses.ExamDomain, error) {
	scorer, ok := uc.Registry.Resolve(examName)
	if !ok {
		return nil, exceptions.ErrAnalyzerNotFound(examName)
	}

	domains := scorer.Domains()
	response := make([]responses.ExamDomain, 0, len(domains))
	for _, domain := range domains {
		response = append(response, responses.ExamDomain{
			Name:     domain.Name,
			Items:    domain.Items,
			MaxScore: domain.MaxScore,
		})
	}
	return response, nil
}

func (uc *analysisUsecase) findCached(ctx context.Context, resultID string) *responses.Analysis {
	cacheKey := fmt.Sprintf(constvars.RedisKeyAnalysisByResultFormat, resultID)
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil || cached == "" {
		return nil
	}

	var analysis models.AnalysisResult
	if err := json.Unmarshal([]byte(cached), &analysis); err != nil {
		uc.Log.Warn("analysisUsecase.findCached failed to decode cached analysis",
			zap.String(constvars.LoggingResultIDKey, resultID),
			zap.Error(err),
		)
		return nil
	}
	response := analysis.ConvertIntoResponse()
	return &response
}

func (uc *analysisUsecase) cache(ctx context.Context, analysis *models.AnalysisResult) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyAnalysisByResultFormat, analysis.ResultID)
	if err := uc.RedisRepository.Set(ctx, cacheKey, analysis, uc.CacheTTL); err != nil {
		uc.Log.Warn("analysisUsecase.cache failed to cache analysis",
			zap.String(constvars.LoggingResultIDKey, analysis.ResultID),
			zap.Error(err),
		)
	}
}

func (uc *analysisUsecase) publishCompleted(ctx context.Context, analysis *models.AnalysisResult, examName string) {
	if uc.EventPublisher == nil {
		return
	}
	event := &contracts.AnalysisCompletedEvent{
		AnalysisID: analysis.ID,
		ResultID:   analysis.ResultID,
		PatientID:  analysis.PatientID,
		ExamName:   examName,
		TotalScore: analysis.TotalScore,
		Severity:   analysis.Severity,
	}
	if err := uc.EventPublisher.PublishAnalysisCompleted(ctx, event); err != nil {
		uc.Log.Warn("analysisUsecase.publishCompleted failed to publish event",
			zap.String(constvars.LoggingAnalysisIDKey, analysis.ID),
			zap.Error(err),
		)
	}
}

func buildDetails(scored *analyzers.Scored) models.AnalysisDetails {
	domains := make([]models.AnalysisDomain, 0, len(scored.Domains))
	for _, domain := range scored.Domains {
		domains = append(domains, models.AnalysisDomain{
			Name:     domain.Name,
			Items:    domain.Items,
			Score:    domain.Score,
			MaxScore: domain.MaxScore,
			Severity: domain.Severity,
		})
	}
	return models.AnalysisDetails{
		ItemScores:     scored.ItemScores,
		DomainAnalysis: domains,
	}
}
