package swaps

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

// Repository handles shift swap persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to swap operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new swap request.
func (r *Repository) Create(ctx context.Context, swap *models.ShiftSwap) error {
	return r.db.WithContext(ctx).Create(swap).Error
}

// FindByID loads a swap by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.ShiftSwap, error) {
	var swap models.ShiftSwap
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&swap).Error; err != nil {
		return nil, err
	}
	return &swap, nil
}

// PendingExists reports whether a Pending swap already references the same
// two employees and shifts.
func (r *Repository) PendingExists(ctx context.Context, swap *models.ShiftSwap) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ShiftSwap{}).
		Where("requested_by = ? AND requested_for = ? AND requested_by_shift_id = ? AND requested_for_shift_id = ? AND status = ?",
			swap.RequestedBy, swap.RequestedFor, swap.RequestedByShift, swap.RequestedForShift, enums.RequestPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListPending returns all swaps awaiting a decision, newest first.
func (r *Repository) ListPending(ctx context.Context) ([]models.ShiftSwap, error) {
	var swaps []models.ShiftSwap
	if err := r.db.WithContext(ctx).
		Where("status = ?", enums.RequestPending).
		Order("created_at DESC").
		Find(&swaps).Error; err != nil {
		return nil, err
	}
	return swaps, nil
}

// ListForUser returns swaps where the user appears on either side.
func (r *Repository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.ShiftSwap, error) {
	var swaps []models.ShiftSwap
	if err := r.db.WithContext(ctx).
		Where("requested_by = ? OR requested_for = ?", userID, userID).
		Order("created_at DESC").
		Find(&swaps).Error; err != nil {
		return nil, err
	}
	return swaps, nil
}

// Update saves the provided swap.
func (r *Repository) Update(ctx context.Context, swap *models.ShiftSwap) error {
	return r.db.WithContext(ctx).Save(swap).Error
}
