package patients

import (
	"context"
	"patientdesk-service/internal/app/models"
	"patientdesk-service/internal/pkg/dto/requests"
	"patientdesk-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	// RegisterPatient runs the registration pipeline: validate, persist,
	// dispatch the confirmation email. Only validation and persistence
	// failures surface as errors.
	RegisterPatient(ctx context.Context, request *requests.CreatePatientRequest) (*responses.PatientResponse, error)
	ListPatients(ctx context.Context) ([]responses.PatientResponse, error)
}

// PatientRepository owns the durable store of patient records. Create-only;
// storage-layer failures come back as generic CustomErrors with no cause
// detail for the client.
type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
}
