package patients

import (
	"context"
	"fmt"
	"patientdesk-service/internal/app/config"
	"patientdesk-service/internal/app/models"
	"patientdesk-service/internal/app/services/shared/mailer"
	"patientdesk-service/internal/app/services/shared/redis"
	"patientdesk-service/internal/pkg/constvars"
	"patientdesk-service/internal/pkg/dto/requests"
	"patientdesk-service/internal/pkg/dto/responses"
	"patientdesk-service/internal/pkg/exceptions"
	"patientdesk-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository PatientRepository
	MailerService     mailer.MailerService
	RedisRepository   redis.RedisRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository PatientRepository,
	mailerService mailer.MailerService,
	redisRepository redis.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		MailerService:     mailerService,
		RedisRepository:   redisRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *patientUsecase) RegisterPatient(ctx context.Context, request *requests.CreatePatientRequest) (*responses.PatientResponse, error) {
	utils.SanitizeCreatePatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	if uc.InternalConfig.App.EnforceUniqueEmail {
		existing, err := uc.PatientRepository.FindByEmail(ctx, request.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrEmailAlreadyRegistered(nil)
		}
	}

	patient := &models.Patient{
		Name:          request.Name,
		Email:         request.Email,
		Phone:         request.Phone,
		DocumentPhoto: request.DocumentPhoto,
		CreatedAt:     time.Now(),
	}

	savedPatient, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyPatientList); err != nil {
		uc.Log.Warn("failed to invalidate patient list cache", zap.Error(err))
	}

	// Best effort from here on: the registration already succeeded and a
	// notification problem must not downgrade it.
	emailPayload := &requests.EmailPayload{
		To:      savedPatient.Email,
		Subject: constvars.EmailRegistrationSubject,
		Body:    fmt.Sprintf(constvars.EmailRegistrationBodyFormat, savedPatient.Name),
	}
	if err := uc.MailerService.SendEmail(ctx, emailPayload); err != nil {
		uc.Log.Error("failed to dispatch confirmation email",
			zap.String("email", savedPatient.Email),
			zap.Error(err))
	}

	response := savedPatient.ToResponse()
	return &response, nil
}

func (uc *patientUsecase) ListPatients(ctx context.Context) ([]responses.PatientResponse, error) {
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyPatientList)
	if err != nil {
		uc.Log.Warn("failed to read patient list cache", zap.Error(err))
	} else if cached != "" {
		var patientResponses []responses.PatientResponse
		if err := json.Unmarshal([]byte(cached), &patientResponses); err == nil {
			return patientResponses, nil
		}
		uc.Log.Warn("discarding unreadable patient list cache entry")
	}

	patientModels, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	patientResponses := make([]responses.PatientResponse, 0, len(patientModels))
	for i := range patientModels {
		patientResponses = append(patientResponses, patientModels[i].ToResponse())
	}

	cacheTTL := time.Duration(uc.InternalConfig.App.PatientListCacheTTLInSeconds) * time.Second
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyPatientList, patientResponses, cacheTTL); err != nil {
		uc.Log.Warn("failed to write patient list cache", zap.Error(err))
	}

	return patientResponses, nil
}
