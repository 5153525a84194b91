package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shiftlinehq/shiftline-backend/api/middleware"
	"github.com/shiftlinehq/shiftline-backend/api/responses"
	"github.com/shiftlinehq/shiftline-backend/api/validators"
	"github.com/shiftlinehq/shiftline-backend/internal/users"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
	"github.com/shiftlinehq/shiftline-backend/pkg/logger"
)

type createUserRequest struct {
	FirstName        string  `json:"first_name" validate:"required"`
	LastName         string  `json:"last_name" validate:"required"`
	Role             string  `json:"role" validate:"required"`
	Email            string  `json:"email" validate:"required,email"`
	Password         string  `json:"password" validate:"required,min=8"`
	Phone            string  `json:"phone,omitempty"`
	JobTitle         *string `json:"job_title,omitempty"`
	Department       *string `json:"department,omitempty"`
	HourlyPayRate    string  `json:"hourly_pay_rate,omitempty"`
	EmploymentStatus string  `json:"employment_status" validate:"required"`
	IsActive         *bool   `json:"is_active,omitempty"`
}

type updateUserRequest struct {
	FirstName        *string `json:"first_name,omitempty"`
	LastName         *string `json:"last_name,omitempty"`
	Role             *string `json:"role,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	JobTitle         *string `json:"job_title,omitempty"`
	Department       *string `json:"department,omitempty"`
	HourlyPayRate    *string `json:"hourly_pay_rate,omitempty"`
	EmploymentStatus *string `json:"employment_status,omitempty"`
	IsActive         *bool   `json:"is_active,omitempty"`
}

func urlUUID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+param)
	}
	return id, nil
}

// CreateUser is the admin path with the full field set.
func CreateUser(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		var req createUserRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := buildCreateInput(req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

func buildCreateInput(req createUserRequest) (users.CreateUserInput, error) {
	role, err := enums.ParseRole(req.Role)
	if err != nil {
		return users.CreateUserInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}
	status, err := enums.ParseEmploymentStatus(req.EmploymentStatus)
	if err != nil {
		return users.CreateUserInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid employment status")
	}

	payRate := decimal.Zero
	if req.HourlyPayRate != "" {
		payRate, err = decimal.NewFromString(req.HourlyPayRate)
		if err != nil {
			return users.CreateUserInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid hourly pay rate")
		}
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	return users.CreateUserInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Role:             role,
		Email:            req.Email,
		Password:         req.Password,
		Phone:            req.Phone,
		JobTitle:         req.JobTitle,
		Department:       req.Department,
		HourlyPayRate:    payRate,
		EmploymentStatus: status,
		IsActive:         active,
	}, nil
}

// ListUsers returns every user without password material.
func ListUsers(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		dtos, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// Profile returns the caller's own record.
func Profile(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == uuid.Nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		dto, err := svc.Get(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func GetUser(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		id, err := urlUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func UpdateUser(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		id, err := urlUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updateUserRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := buildUpdateInput(req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func buildUpdateInput(req updateUserRequest) (users.UpdateUserInput, error) {
	input := users.UpdateUserInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		JobTitle:   req.JobTitle,
		Department: req.Department,
		IsActive:   req.IsActive,
	}

	if req.Role != nil {
		role, err := enums.ParseRole(*req.Role)
		if err != nil {
			return users.UpdateUserInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
		}
		input.Role = &role
	}
	if req.EmploymentStatus != nil {
		status, err := enums.ParseEmploymentStatus(*req.EmploymentStatus)
		if err != nil {
			return users.UpdateUserInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid employment status")
		}
		input.EmploymentStatus = &status
	}
	if req.HourlyPayRate != nil {
		rate, err := decimal.NewFromString(*req.HourlyPayRate)
		if err != nil {
			return users.UpdateUserInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid hourly pay rate")
		}
		input.HourlyPayRate = &rate
	}
	return input, nil
}

func DeleteUser(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		id, err := urlUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
