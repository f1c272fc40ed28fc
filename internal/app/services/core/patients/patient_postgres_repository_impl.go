package patients

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

type patientPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	patientPostgresRepositoryInstance contracts.PatientRepository
	oncePatientPostgresRepository     sync.Once
)

func NewPatientPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.PatientRepository {
	oncePatientPostgresRepository.Do(func() {
		patientPostgresRepositoryInstance = &patientPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return patientPostgresRepositoryInstance
}

func (r *patientPostgresRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	var patient models.Patient
	err := r.DB.QueryRowContext(ctx, queries.GetPatientByID, patientID).Scan(
		&patient.ID,
		&patient.Sex,
		&patient.Birthdate,
		&patient.Initial,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &patient, nil
}
