package results

import (
	"context"
	"testing"

	"psyexam-service/internal/app/models"
	"psyexam-service/internal/pkg/constvars"
	"psyexam-service/internal/pkg/dto/requests"
	"psyexam-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type memoryResultRepository struct {
	byID map[string]*models.Result
}

func (r *memoryResultRepository) Insert(ctx context.Context, result *models.Result) (*models.Result, error) {
	r.byID[result.ID] = result
	return result, nil
}

func (r *memoryResultRepository) FindByID(ctx context.Context, resultID string) (*models.Result, error) {
	result, ok := r.byID[resultID]
	if !ok {
		return nil, nil
	}
	return result, nil
}

type memoryExamRepository struct {
	byID map[string]*models.Exam
}

func (r *memoryExamRepository) FindByID(ctx context.Context, examID string) (*models.Exam, error) {
	exam, ok := r.byID[examID]
	if !ok {
		return nil, nil
	}
	return exam, nil
}

func (r *memoryExamRepository) FindByName(ctx context.Context, name string) (*models.Exam, error) {
	for _, exam := range r.byID {
		if exam.Name == name {
			return exam, nil
		}
	}
	return nil, nil
}

type memoryPatientRepository struct {
	byID map[string]*models.Patient
}

func (r *memoryPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, ok := r.byID[patientID]
	if !ok {
		return nil, nil
	}
	return patient, nil
}

func newResultUsecaseForTest() (*resultUsecase, *memoryResultRepository, *memoryExamRepository, *memoryPatientRepository) {
	resultRepo := &memoryResultRepository{byID: make(map[string]*models.Result)}
	examRepo := &memoryExamRepository{byID: make(map[string]*models.Exam)}
	patientRepo := &memoryPatientRepository{byID: make(map[string]*models.Patient)}
	usecase := &resultUsecase{
		ResultRepository:  resultRepo,
		ExamRepository:    examRepo,
		PatientRepository: patientRepo,
		Log:               zap.NewNop(),
	}
	return usecase, resultRepo, examRepo, patientRepo
}

func itemsOf(values ...int) []*int {
	items := make([]*int, len(values))
	for i := range values {
		value := values[i]
		items[i] = &value
	}
	return items
}

func TestCreateResult(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates A Result", func(t *testing.T) {
		usecase, resultRepo, examRepo, patientRepo := newResultUsecaseForTest()
		patientRepo.byID["patient-1"] = &models.Patient{ID: "patient-1"}
		examRepo.byID["exam-1"] = &models.Exam{ID: "exam-1", Name: "phq_9"}

		response, err := usecase.CreateResult(ctx, &requests.CreateResult{
			PatientID: "patient-1",
			ExamID:    "exam-1",
			Items:     itemsOf(0, 1, 2, 3, 0, 1, 2, 3, 0),
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, response.ID)
		assert.Equal(t, "patient-1", response.PatientID)
		assert.Len(t, resultRepo.byID, 1)
	})

	t.Run("Missing Required Fields Are Rejected", func(t *testing.T) {
		usecase, _, _, _ := newResultUsecaseForTest()

		_, err := usecase.CreateResult(ctx, &requests.CreateResult{ExamID: "exam-1"})
		assert.Error(t, err)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Unknown Patient Is Not Found", func(t *testing.T) {
		usecase, _, examRepo, _ := newResultUsecaseForTest()
		examRepo.byID["exam-1"] = &models.Exam{ID: "exam-1", Name: "phq_9"}

		_, err := usecase.CreateResult(ctx, &requests.CreateResult{
			PatientID: "missing-patient",
			ExamID:    "exam-1",
			Items:     itemsOf(0),
		})
		assert.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})

	t.Run("Unknown Exam Is Not Found", func(t *testing.T) {
		usecase, _, _, patientRepo := newResultUsecaseForTest()
		patientRepo.byID["patient-1"] = &models.Patient{ID: "patient-1"}

		_, err := usecase.CreateResult(ctx, &requests.CreateResult{
			PatientID: "patient-1",
			ExamID:    "missing-exam",
			Items:     itemsOf(0),
		})
		assert.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})
}

func TestFindResultByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns The Stored Result", func(t *testing.T) {
		usecase, resultRepo, _, _ := newResultUsecaseForTest()
		resultRepo.byID["result-1"] = &models.Result{
			ID:        "result-1",
			PatientID: "patient-1",
			ExamID:    "exam-1",
			Items:     itemsOf(1, 2, 3),
		}

		response, err := usecase.FindResultByID(ctx, "result-1")
		assert.NoError(t, err)
		assert.Equal(t, "result-1", response.ID)
		assert.Len(t, response.Items, 3)
	})

	t.Run("Absent Result Is Not Found", func(t *testing.T) {
		usecase, _, _, _ := newResultUsecaseForTest()

		_, err := usecase.FindResultByID(ctx, "missing-result")
		assert.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})
}
