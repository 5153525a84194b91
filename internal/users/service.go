package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shiftlinehq/shiftline-backend/pkg/config"
	"github.com/shiftlinehq/shiftline-backend/pkg/db"
	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
	"github.com/shiftlinehq/shiftline-backend/pkg/security"
)

const clockLayout = "15:04"

type userRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	ListByRole(ctx context.Context, role enums.Role) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	ListWindows(ctx context.Context, userID uuid.UUID) ([]models.AvailabilityWindow, error)
	AddWindow(ctx context.Context, window *models.AvailabilityWindow) error
	FindWindow(ctx context.Context, userID, windowID uuid.UUID) (*models.AvailabilityWindow, error)
	UpdateWindow(ctx context.Context, window *models.AvailabilityWindow) error
	DeleteWindow(ctx context.Context, userID, windowID uuid.UUID) (bool, error)
}

// CreateUserInput is the admin-facing full field set for a new user.
type CreateUserInput struct {
	FirstName        string
	LastName         string
	Role             enums.Role
	Email            string
	Password         string
	Phone            string
	JobTitle         *string
	Department       *string
	HourlyPayRate    decimal.Decimal
	EmploymentStatus enums.EmploymentStatus
	IsActive         bool
}

// UpdateUserInput patches a user; nil fields are left untouched.
type UpdateUserInput struct {
	FirstName        *string
	LastName         *string
	Role             *enums.Role
	Phone            *string
	JobTitle         *string
	Department       *string
	HourlyPayRate    *decimal.Decimal
	EmploymentStatus *enums.EmploymentStatus
	IsActive         *bool
}

// WindowInput is one availability window as submitted by the API.
type WindowInput struct {
	Day       enums.Weekday
	StartTime string
	EndTime   string
}

// Service exposes user management and availability operations.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)

	Create(ctx context.Context, input CreateUserInput) (*UserDTO, error)
	List(ctx context.Context) ([]UserDTO, error)
	ListEmployees(ctx context.Context) ([]UserDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListAvailability(ctx context.Context, userID uuid.UUID) ([]AvailabilityWindowDTO, error)
	AddAvailability(ctx context.Context, userID uuid.UUID, input WindowInput) (*AvailabilityWindowDTO, error)
	UpdateAvailability(ctx context.Context, userID, windowID uuid.UUID, input WindowInput) (*AvailabilityWindowDTO, error)
	RemoveAvailability(ctx context.Context, userID, windowID uuid.UUID) error
}

type service struct {
	repo        userRepository
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
}

// ServiceParams bundles the dependencies required to build a users service.
type ServiceParams struct {
	Repo           userRepository
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
}

// NewService constructs a users service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	return &service{
		repo:        params.Repo,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateUserInput) (*UserDTO, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if !input.Role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}
	if !input.EmploymentStatus.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid employment status")
	}
	if input.HourlyPayRate.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "hourly pay rate cannot be negative")
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := &models.User{
		FirstName:        strings.TrimSpace(input.FirstName),
		LastName:         strings.TrimSpace(input.LastName),
		Role:             input.Role,
		Email:            email,
		Phone:            input.Phone,
		JobTitle:         input.JobTitle,
		Department:       input.Department,
		HourlyPayRate:    input.HourlyPayRate,
		EmploymentStatus: input.EmploymentStatus,
		IsActive:         input.IsActive,
		PasswordHash:     hash,
	}
	if err := s.createUser(ctx, user); err != nil {
		return nil, err
	}

	dto := toDTO(*user)
	return &dto, nil
}

// createUser inserts the user, mapping a duplicate email to CONFLICT.
func (s *service) createUser(ctx context.Context, user *models.User) error {
	if _, err := s.repo.FindByEmail(ctx, user.Email); err == nil {
		return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check user email")
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if db.IsUniqueViolation(err, "") {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]UserDTO, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list users")
	}
	return toDTOs(users), nil
}

// ListEmployees returns the active employees managers can assign shifts to.
func (s *service) ListEmployees(ctx context.Context) ([]UserDTO, error) {
	users, err := s.repo.ListByRole(ctx, enums.RoleEmployee)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list employees")
	}
	return toDTOs(users), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*UserDTO, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(*user)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserDTO, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
		}
		user.Role = *input.Role
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.JobTitle != nil {
		user.JobTitle = input.JobTitle
	}
	if input.Department != nil {
		user.Department = input.Department
	}
	if input.HourlyPayRate != nil {
		if input.HourlyPayRate.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "hourly pay rate cannot be negative")
		}
		user.HourlyPayRate = *input.HourlyPayRate
	}
	if input.EmploymentStatus != nil {
		if !input.EmploymentStatus.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid employment status")
		}
		user.EmploymentStatus = *input.EmploymentStatus
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user")
	}
	dto := toDTO(*user)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete user")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return nil
}

func (s *service) ListAvailability(ctx context.Context, userID uuid.UUID) ([]AvailabilityWindowDTO, error) {
	if _, err := s.findUser(ctx, userID); err != nil {
		return nil, err
	}
	windows, err := s.repo.ListWindows(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list availability")
	}
	dtos := toWindowDTOs(windows)
	if dtos == nil {
		dtos = []AvailabilityWindowDTO{}
	}
	return dtos, nil
}

func (s *service) AddAvailability(ctx context.Context, userID uuid.UUID, input WindowInput) (*AvailabilityWindowDTO, error) {
	if err := validateWindow(input); err != nil {
		return nil, err
	}
	if _, err := s.findUser(ctx, userID); err != nil {
		return nil, err
	}

	window := &models.AvailabilityWindow{
		UserID:    userID,
		Day:       input.Day,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}
	if err := s.repo.AddWindow(ctx, window); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add availability")
	}
	dto := toWindowDTO(*window)
	return &dto, nil
}

func (s *service) UpdateAvailability(ctx context.Context, userID, windowID uuid.UUID, input WindowInput) (*AvailabilityWindowDTO, error) {
	if err := validateWindow(input); err != nil {
		return nil, err
	}

	window, err := s.repo.FindWindow(ctx, userID, windowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "availability window not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load availability")
	}

	window.Day = input.Day
	window.StartTime = input.StartTime
	window.EndTime = input.EndTime
	if err := s.repo.UpdateWindow(ctx, window); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update availability")
	}
	dto := toWindowDTO(*window)
	return &dto, nil
}

func (s *service) RemoveAvailability(ctx context.Context, userID, windowID uuid.UUID) error {
	deleted, err := s.repo.DeleteWindow(ctx, userID, windowID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete availability")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "availability window not found")
	}
	return nil
}

func (s *service) findUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return user, nil
}

// validateWindow rejects malformed or inverted availability windows.
func validateWindow(input WindowInput) error {
	if !input.Day.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid day of week")
	}
	start, err := time.Parse(clockLayout, input.StartTime)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "start_time must be HH:MM")
	}
	end, err := time.Parse(clockLayout, input.EndTime)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "end_time must be HH:MM")
	}
	if !start.Before(end) {
		return pkgerrors.New(pkgerrors.CodeValidation, "start_time must be before end_time")
	}
	return nil
}
