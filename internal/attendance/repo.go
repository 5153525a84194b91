package attendance

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

// Repository handles attendance log persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to attendance operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new attendance log.
func (r *Repository) Create(ctx context.Context, log *models.AttendanceLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// FindOpen returns the employee's open log, if any.
func (r *Repository) FindOpen(ctx context.Context, employeeID uuid.UUID) (*models.AttendanceLog, error) {
	var log models.AttendanceLog
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status = ?", employeeID, enums.AttendanceClockedIn).
		First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// ListForEmployee returns the employee's logs, newest first.
func (r *Repository) ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.AttendanceLog, error) {
	var logs []models.AttendanceLog
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("clock_in_time DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Update saves the provided log.
func (r *Repository) Update(ctx context.Context, log *models.AttendanceLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}
