package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"embassy-appointment-scheduler/internal/models"

	"gorm.io/gorm"
)

// ErrAppointmentNotFound is returned when no row matches the requested id.
var ErrAppointmentNotFound = errors.New("appointment not found")

const timestampLayout = "2006-01-02 15:04:05"

type AppointmentRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Initialize creates the appointments table if it does not exist yet.
func (r *AppointmentRepository) Initialize(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.Appointment{}); err != nil {
		return fmt.Errorf("migrate appointments: %w", err)
	}
	return nil
}

// Insert writes a new appointment in its own transaction. Any failure rolls
// the transaction back before the error is returned.
func (r *AppointmentRepository) Insert(ctx context.Context, appointment *models.Appointment) error {
	stamp := r.now().Format(timestampLayout)
	appointment.CreatedAt = stamp
	appointment.UpdatedAt = stamp

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(appointment).Error; err != nil {
			return fmt.Errorf("insert appointment %s: %w", appointment.ID, err)
		}
		return nil
	})
}

// GetByID retrieves an appointment by ID
func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// ListAll returns every appointment, latest date and time first.
func (r *AppointmentRepository) ListAll(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	return appointments, err
}

func (r *AppointmentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).Count(&count).Error
	return count, err
}

func (r *AppointmentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// Ping runs a trivial query to prove the database answers.
func (r *AppointmentRepository) Ping(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("SELECT 1").Error
}
