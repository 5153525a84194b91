package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shiftlinehq/shiftline-backend/pkg/auth"
	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
	"github.com/shiftlinehq/shiftline-backend/pkg/security"
)

const invalidCredentialsMessage = "invalid credentials"

// RegisterRequest captures the public signup payload.
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required"`
	Phone     string `json:"phone,omitempty"`
}

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token  string     `json:"token"`
	Role   enums.Role `json:"role"`
	UserID uuid.UUID  `json:"userId"`
}

// Register creates an account with the requested role and signs the caller
// in immediately.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	role, err := enums.ParseRole(req.Role)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := &models.User{
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		Role:             role,
		Email:            email,
		Phone:            req.Phone,
		HourlyPayRate:    decimal.Zero,
		EmploymentStatus: enums.EmploymentFullTime,
		IsActive:         true,
		PasswordHash:     hash,
	}
	if err := s.createUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login verifies the credentials and mints an access token. Lookup and
// password failures share one message so probes learn nothing.
func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find user")
	}
	if !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	ok, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	return s.issueToken(user)
}

func (s *service) issueToken(user *models.User) (*AuthResponse, error) {
	token, err := auth.MintAccessToken(s.jwtCfg, time.Now(), auth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}
	return &AuthResponse{Token: token, Role: user.Role, UserID: user.ID}, nil
}
