package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
)

// Repository handles shift persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to shift operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new shift row.
func (r *Repository) Create(ctx context.Context, shift *models.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

// FindByID loads a shift by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&shift).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

// ListAll returns every shift with the assigned employee preloaded.
func (r *Repository) ListAll(ctx context.Context) ([]models.Shift, error) {
	var shifts []models.Shift
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("date, start_time").
		Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// ListForEmployee returns every shift assigned to the employee.
func (r *Repository) ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.Shift, error) {
	var shifts []models.Shift
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date, start_time").
		Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// ListForEmployeeBetween returns the employee's shifts whose date falls in
// the half-open interval [from, to).
func (r *Repository) ListForEmployeeBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date >= ? AND date < ?", employeeID, from, to).
		Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// ListBetween returns all shifts with dates in [from, to], employee
// preloaded for roster views.
func (r *Repository) ListBetween(ctx context.Context, from, to time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("date >= ? AND date <= ?", from, to).
		Order("date, start_time").
		Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// Update saves the provided shift.
func (r *Repository) Update(ctx context.Context, shift *models.Shift) error {
	return r.db.WithContext(ctx).Save(shift).Error
}

// Delete removes the shift row, reporting whether a row existed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Shift{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
