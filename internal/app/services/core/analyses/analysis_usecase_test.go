package analyses

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"psyexam-service/internal/app/contracts"
	"psyexam-service/internal/app/models"
	"psyexam-service/internal/app/services/core/analyzers"
	"psyexam-service/internal/pkg/constvars"
	"psyexam-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type memoryAnalysisRepository struct {
	mu          sync.Mutex
	byResultID  map[string]*models.AnalysisResult
	insertCalls int
	insertHook  func()
}

func newMemoryAnalysisRepository() *memoryAnalysisRepository {
	return &memoryAnalysisRepository{byResultID: make(map[string]*models.AnalysisResult)}
}

func (r *memoryAnalysisRepository) Insert(ctx context.Context, analysis *models.AnalysisResult) (*models.AnalysisResult, error) {
	if r.insertHook != nil {
		r.insertHook()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.insertCalls++
	if _, exists := r.byResultID[analysis.ResultID]; exists {
		return nil, exceptions.ErrAnalysisAlreadyExists(errors.New("duplicate key"), analysis.ResultID)
	}
	stored := *analysis
	r.byResultID[analysis.ResultID] = &stored
	return analysis, nil
}

func (r *memoryAnalysisRepository) FindByID(ctx context.Context, analysisID string) (*models.AnalysisResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, analysis := range r.byResultID {
		if analysis.ID == analysisID {
			found := *analysis
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryAnalysisRepository) FindByResultID(ctx context.Context, resultID string) (*models.AnalysisResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	analysis, ok := r.byResultID[resultID]
	if !ok {
		return nil, nil
	}
	found := *analysis
	return &found, nil
}

func (r *memoryAnalysisRepository) FindAllByPatientID(ctx context.Context, patientID string) ([]models.AnalysisResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var analyses []models.AnalysisResult
	for _, analysis := range r.byResultID {
		if analysis.PatientID == patientID {
			analyses = append(analyses, *analysis)
		}
	}
	return analyses, nil
}

func (r *memoryAnalysisRepository) DeleteByID(ctx context.Context, analysisID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for resultID, analysis := range r.byResultID {
		if analysis.ID == analysisID {
			delete(r.byResultID, resultID)
			return nil
		}
	}
	return nil
}

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

type memoryRedisRepository struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryRedisRepository() *memoryRedisRepository {
	return &memoryRedisRepository{values: make(map[string]string)}
}

func (r *memoryRedisRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[key], nil
}

func (r *memoryRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = string(data)
	return nil
}

func (r *memoryRedisRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []*contracts.AnalysisCompletedEvent
}

func (p *recordingPublisher) PublishAnalysisCompleted(ctx context.Context, event *contracts.AnalysisCompletedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

type usecaseFixture struct {
	usecase      *analysisUsecase
	analysisRepo *memoryAnalysisRepository
	resultRepo   *memoryResultRepository
	examRepo     *memoryExamRepository
	patientRepo  *memoryPatientRepository
	redisRepo    *memoryRedisRepository
	publisher    *recordingPublisher
}

func newUsecaseFixture() *usecaseFixture {
	fixture := &usecaseFixture{
		analysisRepo: newMemoryAnalysisRepository(),
		resultRepo:   &memoryResultRepository{byID: make(map[string]*models.Result)},
		examRepo:     &memoryExamRepository{byID: make(map[string]*models.Exam)},
		patientRepo:  &memoryPatientRepository{byID: make(map[string]*models.Patient)},
		redisRepo:    newMemoryRedisRepository(),
		publisher:    &recordingPublisher{},
	}
	fixture.usecase = &analysisUsecase{
		AnalysisRepository: fixture.analysisRepo,
		ResultRepository:   fixture.resultRepo,
		ExamRepository:     fixture.examRepo,
		PatientRepository:  fixture.patientRepo,
		RedisRepository:    fixture.redisRepo,
		EventPublisher:     fixture.publisher,
		Registry:           analyzers.Default(),
		CacheTTL:           time.Minute,
		Log:                zap.NewNop(),
	}
	return fixture
}

func (f *usecaseFixture) seedPHQ9Result(resultID string, values ...int) {
	f.patientRepo.byID["patient-1"] = &models.Patient{ID: "patient-1"}
	f.examRepo.byID["exam-phq9"] = &models.Exam{ID: "exam-phq9", Name: "PHQ-9"}

	items := make([]*int, len(values))
	for i := range values {
		value := values[i]
		items[i] = &value
	}
	f.resultRepo.byID[resultID] = &models.Result{
		ID:        resultID,
		PatientID: "patient-1",
		ExamID:    "exam-phq9",
		Items:     items,
	}
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr))
	return customErr.StatusCode
}

func TestAnalyzeResult(t *testing.T) {
	ctx := context.Background()

	t.Run("Scores And Persists A New Result", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.seedPHQ9Result("result-1", 3, 3, 3, 1, 0, 0, 0, 0, 0)

		analysis, err := fixture.usecase.AnalyzeResult(ctx, "result-1")
		assert.NoError(t, err)
		assert.Equal(t, "result-1", analysis.ResultID)
		assert.Equal(t, 10, analysis.TotalScore)
		assert.Equal(t, analyzers.SeverityModerate, analysis.Severity)
		assert.Nil(t, analysis.SDSIndex)
		assert.Len(t, analysis.ItemScores, 9)
		assert.Len(t, analysis.DomainAnalysis, 5)
		assert.Equal(t, 1, fixture.analysisRepo.insertCalls)
		assert.Equal(t, 1, fixture.publisher.count())
	})

	t.Run("Second Call Returns The Stored Analysis Unchanged", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.seedPHQ9Result("result-1", 2, 2, 2, 2, 2, 2, 2, 2, 2)

		first, err := fixture.usecase.AnalyzeResult(ctx, "result-1")
		assert.NoError(t, err)

		second, err := fixture.usecase.AnalyzeResult(ctx, "result-1")
		assert.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.TotalScore, second.TotalScore)
		assert.Equal(t, first.Interpretation, second.Interpretation)
		assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
		assert.Equal(t, 1, fixture.analysisRepo.insertCalls)
		assert.Equal(t, 1, fixture.publisher.count())
	})

	t.Run("Concurrent Calls Persist Exactly One Analysis", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.seedPHQ9Result("result-1", 1, 1, 1, 1, 1, 1, 1, 1, 1)

		const callers = 16
		var wg sync.WaitGroup
		analysisIDs := make([]string, callers)
		errs := make([]error, callers)

		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				analysis, err := fixture.usecase.AnalyzeResult(ctx, "result-1")
				if err != nil {
					errs[i] = err
					return
				}
				analysisIDs[i] = analysis.ID
			}(i)
		}
		wg.Wait()

		stored, err := fixture.analysisRepo.FindByResultID(ctx, "result-1")
		assert.NoError(t, err)
		assert.NotNil(t, stored)

		for i := 0; i < callers; i++ {
			assert.NoError(t, errs[i])
			assert.Equal(t, stored.ID, analysisIDs[i])
		}
		assert.Len(t, fixture.analysisRepo.byResultID, 1)
	})

	t.Run("Losing The Insert Race Returns The Winner", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.seedPHQ9Result("result-1", 0, 0, 0, 0, 0, 0, 0, 0, 0)

		winner := &models.AnalysisResult{
			ID:        "winner-analysis",
			ResultID:  "result-1",
			PatientID: "patient-1",
			ExamID:    "exam-phq9",
			Severity:  analyzers.SeverityNoneMinimal,
			CreatedAt: time.Now(),
		}
		// The winner lands between the existence check and our insert.
		fixture.analysisRepo.insertHook = func() {
			fixture.analysisRepo.mu.Lock()
			if _, exists := fixture.analysisRepo.byResultID["result-1"]; !exists {
				fixture.analysisRepo.byResultID["result-1"] = winner
			}
			fixture.analysisRepo.mu.Unlock()
		}

		analysis, err := fixture.usecase.AnalyzeResult(ctx, "result-1")
		assert.NoError(t, err)
		assert.Equal(t, "winner-analysis", analysis.ID)
		assert.Equal(t, 0, fixture.publisher.count())
	})

	t.Run("Unknown Result Is Not Found", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.AnalyzeResult(ctx, "missing-result")
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
		assert.Equal(t, 0, fixture.analysisRepo.insertCalls)
	})

	t.Run("Unknown Exam Is Not Found", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.seedPHQ9Result("result-1", 0, 0, 0, 0, 0, 0, 0, 0, 0)
		fixture.resultRepo.byID["result-1"].ExamID = "missing-exam"

		_, err := fixture.usecase.AnalyzeResult(ctx, "result-1")
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})

	t.Run("Exam Without A Scorer Is Rejected", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.seedPHQ9Result("result-1", 0, 0, 0, 0, 0, 0, 0, 0, 0)
		fixture.examRepo.byID["exam-phq9"].Name = "gad_7"

		_, err := fixture.usecase.AnalyzeResult(ctx, "result-1")
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
		assert.Equal(t, 0, fixture.analysisRepo.insertCalls)
	})

	t.Run("Out Of Range Answer Fails Without Persisting", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.seedPHQ9Result("result-1", 0, 0, 9, 0, 0, 0, 0, 0, 0)

		_, err := fixture.usecase.AnalyzeResult(ctx, "result-1")
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusUnprocessableEntity, statusCodeOf(t, err))
		assert.Equal(t, 0, fixture.analysisRepo.insertCalls)
		assert.Len(t, fixture.analysisRepo.byResultID, 0)
		assert.Equal(t, 0, fixture.publisher.count())
	})

	t.Run("Caches The Analysis By Result ID", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.seedPHQ9Result("result-1", 1, 1, 1, 0, 0, 0, 0, 0, 0)

		_, err := fixture.usecase.AnalyzeResult(ctx, "result-1")
		assert.NoError(t, err)

		cached, err := fixture.redisRepo.Get(ctx, "analysis:result:result-1")
		assert.NoError(t, err)
		assert.NotEmpty(t, cached)
	})
}

func TestFindByResultID(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns The Stored Analysis", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.seedPHQ9Result("result-1", 3, 3, 3, 3, 3, 3, 3, 1, 0)

		created, err := fixture.usecase.AnalyzeResult(ctx, "result-1")
		assert.NoError(t, err)

		found, err := fixture.usecase.FindByResultID(ctx, "result-1")
		assert.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, 22, found.TotalScore)
	})

	t.Run("Absent Analysis Is Not Found", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.FindByResultID(ctx, "result-1")
		assert.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})
}

func TestFindAllByPatientID(t *testing.T) {
	ctx := context.Background()

	t.Run("Attaches The Exam Name", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.seedPHQ9Result("result-1", 1, 0, 0, 0, 0, 0, 0, 0, 0)

		_, err := fixture.usecase.AnalyzeResult(ctx, "result-1")
		assert.NoError(t, err)

		analyses, err := fixture.usecase.FindAllByPatientID(ctx, "patient-1")
		assert.NoError(t, err)
		assert.Len(t, analyses, 1)
		assert.Equal(t, "PHQ-9", analyses[0].ExamName)
	})

	t.Run("Unknown Patient Is Not Found", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.FindAllByPatientID(ctx, "missing-patient")
		assert.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})

	t.Run("Patient Without Analyses Gets An Empty List", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.patientRepo.byID["patient-1"] = &models.Patient{ID: "patient-1"}

		analyses, err := fixture.usecase.FindAllByPatientID(ctx, "patient-1")
		assert.NoError(t, err)
		assert.Empty(t, analyses)
	})
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes And Invalidates The Cache", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.seedPHQ9Result("result-1", 1, 1, 0, 0, 0, 0, 0, 0, 0)

		created, err := fixture.usecase.AnalyzeResult(ctx, "result-1")
		assert.NoError(t, err)

		err = fixture.usecase.DeleteByID(ctx, created.ID)
		assert.NoError(t, err)

		cached, err := fixture.redisRepo.Get(ctx, "analysis:result:result-1")
		assert.NoError(t, err)
		assert.Empty(t, cached)

		stored, err := fixture.analysisRepo.FindByResultID(ctx, "result-1")
		assert.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("Unknown Analysis Is Not Found", func(t *testing.T) {
		fixture := newUsecaseFixture()

		err := fixture.usecase.DeleteByID(ctx, "missing-analysis")
		assert.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})
}

func TestListExamDomains(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists PHQ-9 Domains", func(t *testing.T) {
		fixture := newUsecaseFixture()

		domains, err := fixture.usecase.ListExamDomains(ctx, "PHQ-9")
		assert.NoError(t, err)
		assert.Len(t, domains, 5)
		assert.Equal(t, "mood/affect", domains[0].Name)
	})

	t.Run("Unknown Exam Is Rejected", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.ListExamDomains(ctx, "unknown-exam")
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
	})
}
