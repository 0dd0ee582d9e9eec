package patients

import (
	"context"
	"errors"
	"patientdesk-service/internal/app/config"
	"patientdesk-service/internal/app/models"
	"patientdesk-service/internal/pkg/constvars"
	"patientdesk-service/internal/pkg/dto/requests"
	"patientdesk-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakePatientRepository struct {
	createCalls    []models.Patient
	createErr      error
	patients       []models.Patient
	findAllCalls   int
	findAllErr     error
	byEmail        map[string]*models.Patient
	findByEmailErr error
}

func (f *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	patient.ID = primitive.NewObjectID()
	f.createCalls = append(f.createCalls, *patient)
	f.patients = append(f.patients, *patient)
	return patient, nil
}

func (f *fakePatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	f.findAllCalls++
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	return f.patients, nil
}

func (f *fakePatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	if f.findByEmailErr != nil {
		return nil, f.findByEmailErr
	}
	return f.byEmail[email], nil
}

type fakeMailerService struct {
	sent    []*requests.EmailPayload
	sendErr error
}

func (f *fakeMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, request)
	return nil
}

type fakeRedisRepository struct {
	store  map[string]string
	setErr error
	getErr error
	delErr error
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: map[string]string{}}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(jsonValue)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.store[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.store, key)
	return nil
}

type usecaseFixture struct {
	usecase PatientUsecase
	repo    *fakePatientRepository
	mailer  *fakeMailerService
	cache   *fakeRedisRepository
	config  *config.InternalConfig
}

func newUsecaseFixture() *usecaseFixture {
	repo := &fakePatientRepository{byEmail: map[string]*models.Patient{}}
	mailerSvc := &fakeMailerService{}
	cache := newFakeRedisRepository()
	internalConfig := &config.InternalConfig{
		App: config.App{PatientListCacheTTLInSeconds: 30},
	}
	return &usecaseFixture{
		usecase: NewPatientUsecase(repo, mailerSvc, cache, internalConfig, zap.NewNop()),
		repo:    repo,
		mailer:  mailerSvc,
		cache:   cache,
		config:  internalConfig,
	}
}

func validRequest() *requests.CreatePatientRequest {
	return &requests.CreatePatientRequest{
		Name:          "John Doe",
		Email:         "john@example.com",
		Phone:         "1234567890",
		DocumentPhoto: "http://example.com/photo.jpg",
	}
}

func assertCustomError(t *testing.T, err error, statusCode int, clientMessage string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, statusCode, customErr.StatusCode)
	assert.Equal(t, clientMessage, customErr.ClientMessage)
}

func TestRegisterPatient(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the normalized fields and dispatches a confirmation", func(t *testing.T) {
		f := newUsecaseFixture()

		response, err := f.usecase.RegisterPatient(ctx, validRequest())

		require.NoError(t, err)
		require.Len(t, f.repo.createCalls, 1)
		created := f.repo.createCalls[0]
		assert.Equal(t, "John Doe", created.Name)
		assert.Equal(t, "john@example.com", created.Email)
		assert.Equal(t, "1234567890", created.Phone)
		assert.Equal(t, "http://example.com/photo.jpg", created.DocumentPhoto)
		assert.False(t, created.CreatedAt.IsZero())

		require.Len(t, f.mailer.sent, 1)
		assert.Equal(t, "john@example.com", f.mailer.sent[0].To)
		assert.Equal(t, constvars.EmailRegistrationSubject, f.mailer.sent[0].Subject)
		assert.Contains(t, f.mailer.sent[0].Body, "John Doe")

		assert.Equal(t, created.ID.Hex(), response.ID)
		assert.Equal(t, "John Doe", response.Name)
	})

	t.Run("sanitizes before persisting", func(t *testing.T) {
		f := newUsecaseFixture()
		request := validRequest()
		request.Name = "  John Doe  "
		request.Email = "  JOHN@Example.com "

		_, err := f.usecase.RegisterPatient(ctx, request)

		require.NoError(t, err)
		require.Len(t, f.repo.createCalls, 1)
		assert.Equal(t, "John Doe", f.repo.createCalls[0].Name)
		assert.Equal(t, "john@example.com", f.repo.createCalls[0].Email)
	})

	t.Run("missing name short-circuits before any side effect", func(t *testing.T) {
		f := newUsecaseFixture()
		request := validRequest()
		request.Name = ""

		_, err := f.usecase.RegisterPatient(ctx, request)

		assertCustomError(t, err, constvars.StatusBadRequest, "Name is required")
		assert.Empty(t, f.repo.createCalls)
		assert.Empty(t, f.mailer.sent)
	})

	t.Run("reports only the first violation in field order", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*requests.CreatePatientRequest)
			message string
		}{
			{
				name: "name before email",
				mutate: func(r *requests.CreatePatientRequest) {
					r.Name = ""
					r.Email = "not-an-email"
				},
				message: "Name is required",
			},
			{
				name: "email before phone",
				mutate: func(r *requests.CreatePatientRequest) {
					r.Email = "not-an-email"
					r.Phone = "555"
				},
				message: "Invalid email",
			},
			{
				name: "phone before document photo",
				mutate: func(r *requests.CreatePatientRequest) {
					r.Phone = "555"
					r.DocumentPhoto = "not-a-url"
				},
				message: "Invalid phone number",
			},
			{
				name: "document photo last",
				mutate: func(r *requests.CreatePatientRequest) {
					r.DocumentPhoto = "not-a-url"
				},
				message: "Invalid URL for the document photo",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newUsecaseFixture()
				request := validRequest()
				tc.mutate(request)

				_, err := f.usecase.RegisterPatient(ctx, request)

				assertCustomError(t, err, constvars.StatusBadRequest, tc.message)
				assert.Empty(t, f.repo.createCalls)
				assert.Empty(t, f.mailer.sent)
			})
		}
	})

	t.Run("persistence failure aborts before notification", func(t *testing.T) {
		f := newUsecaseFixture()
		f.repo.createErr = exceptions.ErrMongoDBInsertDocument(errors.New("connection reset"))

		_, err := f.usecase.RegisterPatient(ctx, validRequest())

		assertCustomError(t, err, constvars.StatusInternalServerError, "Error registering patient")
		assert.Empty(t, f.mailer.sent)
	})

	t.Run("notification failure never downgrades the outcome", func(t *testing.T) {
		f := newUsecaseFixture()
		f.mailer.sendErr = exceptions.ErrMailerPublishMessage(errors.New("broker down"))

		response, err := f.usecase.RegisterPatient(ctx, validRequest())

		require.NoError(t, err)
		assert.Len(t, f.repo.createCalls, 1)
		assert.NotNil(t, response)
	})

	t.Run("duplicate email is admitted by default", func(t *testing.T) {
		f := newUsecaseFixture()

		_, err := f.usecase.RegisterPatient(ctx, validRequest())
		require.NoError(t, err)
		_, err = f.usecase.RegisterPatient(ctx, validRequest())
		require.NoError(t, err)

		assert.Len(t, f.repo.createCalls, 2)
	})

	t.Run("duplicate email is rejected when uniqueness is enforced", func(t *testing.T) {
		f := newUsecaseFixture()
		f.config.App.EnforceUniqueEmail = true
		f.repo.byEmail["john@example.com"] = &models.Patient{Email: "john@example.com"}

		_, err := f.usecase.RegisterPatient(ctx, validRequest())

		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrClientEmailAlreadyRegistered)
		assert.Empty(t, f.repo.createCalls)
		assert.Empty(t, f.mailer.sent)
	})
}

func TestListPatients(t *testing.T) {
	ctx := context.Background()

	t.Run("returns created records without transformation", func(t *testing.T) {
		f := newUsecaseFixture()
		_, err := f.usecase.RegisterPatient(ctx, validRequest())
		require.NoError(t, err)

		patientResponses, err := f.usecase.ListPatients(ctx)

		require.NoError(t, err)
		require.Len(t, patientResponses, 1)
		assert.Equal(t, "John Doe", patientResponses[0].Name)
		assert.Equal(t, "john@example.com", patientResponses[0].Email)
		assert.Equal(t, "1234567890", patientResponses[0].Phone)
		assert.Equal(t, "http://example.com/photo.jpg", patientResponses[0].DocumentPhoto)
	})

	t.Run("serves the cached list on a repeat call", func(t *testing.T) {
		f := newUsecaseFixture()
		_, err := f.usecase.RegisterPatient(ctx, validRequest())
		require.NoError(t, err)

		_, err = f.usecase.ListPatients(ctx)
		require.NoError(t, err)
		_, err = f.usecase.ListPatients(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, f.repo.findAllCalls)
	})

	t.Run("registration invalidates the cached list", func(t *testing.T) {
		f := newUsecaseFixture()
		_, err := f.usecase.RegisterPatient(ctx, validRequest())
		require.NoError(t, err)

		_, err = f.usecase.ListPatients(ctx)
		require.NoError(t, err)

		request := validRequest()
		request.Email = "jane@example.com"
		_, err = f.usecase.RegisterPatient(ctx, request)
		require.NoError(t, err)

		patientResponses, err := f.usecase.ListPatients(ctx)
		require.NoError(t, err)
		assert.Len(t, patientResponses, 2)
		assert.Equal(t, 2, f.repo.findAllCalls)
	})

	t.Run("cache problems fall through to the repository", func(t *testing.T) {
		f := newUsecaseFixture()
		f.cache.getErr = errors.New("redis unavailable")
		f.cache.setErr = errors.New("redis unavailable")
		_, err := f.usecase.RegisterPatient(ctx, validRequest())
		require.NoError(t, err)

		patientResponses, err := f.usecase.ListPatients(ctx)

		require.NoError(t, err)
		assert.Len(t, patientResponses, 1)
	})

	t.Run("repository failure surfaces as a fetch error", func(t *testing.T) {
		f := newUsecaseFixture()
		f.repo.findAllErr = exceptions.ErrMongoDBFindDocument(errors.New("connection reset"))

		_, err := f.usecase.ListPatients(ctx)

		assertCustomError(t, err, constvars.StatusInternalServerError, "Error fetching patients")
	})
}
