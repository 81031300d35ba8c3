package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"embassy-appointment-scheduler/internal/config"
	"embassy-appointment-scheduler/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AppointmentStore is the persistence the service needs.
type AppointmentStore interface {
	Insert(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// CreateAppointmentInput carries the booking form. Field order is the order in
// which missing fields are reported.
type CreateAppointmentInput struct {
	ApplicantName   string `form:"applicant_name" json:"applicant_name" validate:"required"`
	Email           string `form:"email" json:"email" validate:"required"`
	PassportNumber  string `form:"passport_number" json:"passport_number" validate:"required"`
	PhoneNumber     string `form:"phone_number" json:"phone_number"`
	AppointmentDate string `form:"appointment_date" json:"appointment_date" validate:"required"`
	AppointmentTime string `form:"appointment_time" json:"appointment_time" validate:"required"`
	MedicalExamDate string `form:"medical_exam_date" json:"medical_exam_date" validate:"required"`
}

// MissingFieldError reports the first required field left empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "Missing required field: " + e.Field
}

// ValidationError carries the reason a medical exam was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// AppointmentStats are the counts exported on /metrics.
type AppointmentStats struct {
	Total     int64
	Pending   int64
	Confirmed int64
}

type AppointmentService struct {
	store    AppointmentStore
	rules    config.AppointmentConfig
	validate *validator.Validate
	now      func() time.Time
}

func NewAppointmentService(store AppointmentStore, rules config.AppointmentConfig) *AppointmentService {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &AppointmentService{
		store:    store,
		rules:    rules,
		validate: validate,
		now:      time.Now,
	}
}

// WithClock replaces the clock used for medical-exam checks.
func (s *AppointmentService) WithClock(now func() time.Time) *AppointmentService {
	s.now = now
	return s
}

// Create validates the booking and stores it as a confirmed appointment with a
// verified medical exam. It returns the new appointment's id.
func (s *AppointmentService) Create(ctx context.Context, input CreateAppointmentInput) (string, error) {
	if err := s.checkRequired(input); err != nil {
		return "", err
	}

	if s.rules.MedicalExamRequired {
		result := ValidateMedicalExam(input.MedicalExamDate, s.rules.MedicalExamValidityDays, s.now())
		if !result.Valid {
			return "", &ValidationError{Reason: result.Message}
		}
	}

	// Exams are not reviewed yet; every accepted booking is verified and confirmed.
	appointment := &models.Appointment{
		ID:                  uuid.NewString(),
		ApplicantName:       input.ApplicantName,
		Email:               input.Email,
		PassportNumber:      input.PassportNumber,
		PhoneNumber:         input.PhoneNumber,
		AppointmentDate:     input.AppointmentDate,
		AppointmentTime:     input.AppointmentTime,
		MedicalExamDate:     input.MedicalExamDate,
		MedicalExamVerified: true,
		Status:              models.StatusConfirmed,
	}

	if err := s.store.Insert(ctx, appointment); err != nil {
		return "", fmt.Errorf("failed to create appointment: %w", err)
	}

	return appointment.ID, nil
}

// GetDetail retrieves a single appointment by ID
func (s *AppointmentService) GetDetail(ctx context.Context, id string) (*models.Appointment, error) {
	return s.store.GetByID(ctx, id)
}

// List retrieves all appointments, most recent slot first
func (s *AppointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	return s.store.ListAll(ctx)
}

func (s *AppointmentService) Stats(ctx context.Context) (*AppointmentStats, error) {
	total, err := s.store.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}
	pending, err := s.store.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending appointments: %w", err)
	}
	confirmed, err := s.store.CountByStatus(ctx, models.StatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count confirmed appointments: %w", err)
	}

	return &AppointmentStats{Total: total, Pending: pending, Confirmed: confirmed}, nil
}

func (s *AppointmentService) checkRequired(input CreateAppointmentInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &MissingFieldError{Field: fieldErrs[0].Field()}
	}
	return fmt.Errorf("check required fields: %w", err)
}
