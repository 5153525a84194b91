package timeoff

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

// Repository handles time-off request persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to time-off operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new time-off request.
func (r *Repository) Create(ctx context.Context, req *models.TimeOffRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// FindByID loads a request along with the employee for notifications.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.TimeOffRequest, error) {
	var req models.TimeOffRequest
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("id = ?", id).
		First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// ListPending returns requests awaiting a decision, oldest first.
func (r *Repository) ListPending(ctx context.Context) ([]models.TimeOffRequest, error) {
	var reqs []models.TimeOffRequest
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("status = ?", enums.RequestPending).
		Order("created_at").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// ListForEmployee returns the employee's requests, newest first.
func (r *Repository) ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.TimeOffRequest, error) {
	var reqs []models.TimeOffRequest
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// Update saves the provided request.
func (r *Repository) Update(ctx context.Context, req *models.TimeOffRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}
