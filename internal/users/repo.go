package users

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

// Repository exposes user and availability persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user row.
func (r *Repository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByEmail retrieves the user matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID loads a user with their availability windows.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Availability").
		First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns every user ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Preload("Availability").
		Order("last_name, first_name").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListByRole returns active users holding the given role.
func (r *Repository) ListByRole(ctx context.Context, role enums.Role) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", role, true).
		Order("last_name, first_name").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update saves the provided user.
func (r *Repository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete removes the user and their availability windows.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		Delete(&models.AvailabilityWindow{}).Error; err != nil {
		return false, err
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListWindows returns the user's availability windows.
func (r *Repository) ListWindows(ctx context.Context, userID uuid.UUID) ([]models.AvailabilityWindow, error) {
	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day, start_time").
		Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

// AddWindow inserts one availability window.
func (r *Repository) AddWindow(ctx context.Context, window *models.AvailabilityWindow) error {
	return r.db.WithContext(ctx).Create(window).Error
}

// FindWindow loads one of the user's windows by id.
func (r *Repository) FindWindow(ctx context.Context, userID, windowID uuid.UUID) (*models.AvailabilityWindow, error) {
	var window models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", windowID, userID).
		First(&window).Error; err != nil {
		return nil, err
	}
	return &window, nil
}

// UpdateWindow saves the provided window.
func (r *Repository) UpdateWindow(ctx context.Context, window *models.AvailabilityWindow) error {
	return r.db.WithContext(ctx).Save(window).Error
}

// DeleteWindow removes one of the user's windows.
func (r *Repository) DeleteWindow(ctx context.Context, userID, windowID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", windowID, userID).
		Delete(&models.AvailabilityWindow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
