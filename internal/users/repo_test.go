package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	users := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  role TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  phone TEXT,
  job_title TEXT,
  department TEXT,
  hourly_pay_rate TEXT NOT NULL DEFAULT '0',
  employment_status TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  password_hash TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	windows := `
CREATE TABLE IF NOT EXISTS availability_windows (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  day TEXT NOT NULL,
  start_time TEXT NOT NULL,
  end_time TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(users).Error)
	require.NoError(t, db.Exec(windows).Error)
	require.NoError(t, db.Exec(`DELETE FROM availability_windows`).Error)
	require.NoError(t, db.Exec(`DELETE FROM users`).Error)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, first, last string, role enums.Role, active bool) *models.User {
	t.Helper()

	user := &models.User{
		ID:               uuid.New(),
		FirstName:        first,
		LastName:         last,
		Role:             role,
		Email:            uuid.NewString() + "@example.com",
		EmploymentStatus: enums.EmploymentFullTime,
		IsActive:         active,
		PasswordHash:     "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedWindow(t *testing.T, db *gorm.DB, userID uuid.UUID, day enums.Weekday, start, end string) *models.AvailabilityWindow {
	t.Helper()

	window := &models.AvailabilityWindow{
		ID:        uuid.New(),
		UserID:    userID,
		Day:       day,
		StartTime: start,
		EndTime:   end,
	}
	require.NoError(t, db.Create(window).Error)
	return window
}

func TestUsersRepoFindByEmail(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "Ada", "Lovelace", enums.RoleEmployee, true)

	found, err := repo.FindByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUsersRepoFindByIDPreloadsAvailability(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "Ada", "Lovelace", enums.RoleEmployee, true)
	seedWindow(t, db, user.ID, enums.Monday, "09:00", "17:00")
	seedWindow(t, db, user.ID, enums.Friday, "08:00", "12:00")

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, found.Availability, 2)
}

func TestUsersRepoListByRole(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	active := seedUser(t, db, "Ada", "Lovelace", enums.RoleEmployee, true)
	seedUser(t, db, "Grace", "Hopper", enums.RoleManager, true)
	seedUser(t, db, "Alan", "Turing", enums.RoleEmployee, false)

	employees, err := repo.ListByRole(ctx, enums.RoleEmployee)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, active.ID, employees[0].ID)
}

// The users table defaults is_active to true; the insert must still carry
// an explicit false so deactivated accounts are stored deactivated.
func TestUsersRepoCreatePersistsInactive(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := &models.User{
		ID:               uuid.New(),
		FirstName:        "Alan",
		LastName:         "Turing",
		Role:             enums.RoleEmployee,
		Email:            uuid.NewString() + "@example.com",
		EmploymentStatus: enums.EmploymentFullTime,
		IsActive:         false,
		PasswordHash:     "x",
	}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)
}

func TestUsersRepoDeleteRemovesWindows(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "Ada", "Lovelace", enums.RoleEmployee, true)
	seedWindow(t, db, user.ID, enums.Monday, "09:00", "17:00")

	deleted, err := repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	windows, err := repo.ListWindows(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, windows)

	deleted, err = repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUsersRepoWindowScopedToUser(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "Ada", "Lovelace", enums.RoleEmployee, true)
	other := seedUser(t, db, "Alan", "Turing", enums.RoleEmployee, true)
	window := seedWindow(t, db, owner.ID, enums.Monday, "09:00", "17:00")

	_, err := repo.FindWindow(ctx, other.ID, window.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	deleted, err := repo.DeleteWindow(ctx, other.ID, window.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.DeleteWindow(ctx, owner.ID, window.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}
