package results

import (
	"context"
	"sync"
	"time"

	"psyexam-service/internal/app/contracts"
	"psyexam-service/internal/app/models"
	"psyexam-service/internal/pkg/constvars"
	"psyexam-service/internal/pkg/dto/requests"
	"psyexam-service/internal/pkg/dto/responses"
	"psyexam-service/internal/pkg/exceptions"
	"psyexam-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type resultUsecase struct {
	ResultRepository  contracts.ResultRepository
	ExamRepository    contracts.ExamRepository
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

var (
	resultUsecaseInstance contracts.ResultUsecase
	onceResultUsecase     sync.Once
)

func NewResultUsecase(
	resultRepository contracts.ResultRepository,
	examRepository contracts.ExamRepository,
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
) contracts.ResultUsecase {
	onceResultUsecase.Do(func() {
		resultUsecaseInstance = &resultUsecase{
			ResultRepository:  resultRepository,
			ExamRepository:    examRepository,
			PatientRepository: patientRepository,
			Log:               logger,
		}
	})
	return resultUsecaseInstance
}

func (uc *resultUsecase) CreateResult(ctx context.Context, request *requests.CreateResult) (*responses.Result, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("resultUsecase.CreateResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingExamIDKey, request.ExamID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(request.PatientID)
	}

	exam, err := uc.ExamRepository.FindByID(ctx, request.ExamID)
	if err != nil {
		return nil, err
	}
	if exam == nil {
		return nil, exceptions.ErrExamNotFound(request.ExamID)
	}

	now := time.Now()
	result := &models.Result{
		ID:        uuid.NewString(),
		PatientID: request.PatientID,
		ExamID:    request.ExamID,
		Items:     request.Items,
		FreeTexts: request.FreeTexts,
		CreatedAt: now,
		UpdatedAt: now,
	}

	inserted, err := uc.ResultRepository.Insert(ctx, result)
	if err != nil {
		return nil, err
	}

	response := inserted.ConvertIntoResponse()
	return &response, nil
}

func (uc *resultUsecase) FindResultByID(ctx context.Context, resultID string) (*responses.Result, error) {
	result, err := uc.ResultRepository.FindByID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, exceptions.ErrResultNotFound(resultID)
	}
	response := result.ConvertIntoResponse()
	return &response, nil
}
