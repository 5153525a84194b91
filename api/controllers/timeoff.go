package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/api/middleware"
	"github.com/shiftlinehq/shiftline-backend/api/responses"
	"github.com/shiftlinehq/shiftline-backend/api/validators"
	"github.com/shiftlinehq/shiftline-backend/internal/timeoff"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
	"github.com/shiftlinehq/shiftline-backend/pkg/logger"
)

type createTimeOffRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Reason    string `json:"reason,omitempty" validate:"max=500"`
}

type decideTimeOffRequest struct {
	Status string `json:"status" validate:"required"`
}

func CreateTimeOff(svc timeoff.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "timeoff service unavailable"))
			return
		}

		var req createTimeOffRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		start, err := timeoff.ParseDate(req.StartDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "start_date must be YYYY-MM-DD"))
			return
		}
		end, err := timeoff.ParseDate(req.EndDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "end_date must be YYYY-MM-DD"))
			return
		}

		employeeID := middleware.UserIDFromContext(r.Context())
		if employeeID == uuid.Nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		dto, err := svc.Create(r.Context(), employeeID, timeoff.CreateRequestInput{
			StartDate: start,
			EndDate:   end,
			Reason:    req.Reason,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

func ListPendingTimeOff(svc timeoff.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "timeoff service unavailable"))
			return
		}

		dtos, err := svc.ListPending(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

func MyTimeOff(svc timeoff.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "timeoff service unavailable"))
			return
		}

		employeeID := middleware.UserIDFromContext(r.Context())
		if employeeID == uuid.Nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		dtos, err := svc.ListForEmployee(r.Context(), employeeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// DecideTimeOff approves or rejects a pending request. The decision is
// recorded against the calling manager.
func DecideTimeOff(svc timeoff.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "timeoff service unavailable"))
			return
		}

		id, err := urlUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req decideTimeOffRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		status, err := enums.ParseRequestStatus(req.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid status"))
			return
		}

		managerID := middleware.UserIDFromContext(r.Context())
		dto, err := svc.Decide(r.Context(), id, managerID, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
