package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/api/middleware"
	"github.com/shiftlinehq/shiftline-backend/api/responses"
	"github.com/shiftlinehq/shiftline-backend/internal/attendance"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
	"github.com/shiftlinehq/shiftline-backend/pkg/logger"
)

func ClockIn(svc attendance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "attendance service unavailable"))
			return
		}

		employeeID := middleware.UserIDFromContext(r.Context())
		if employeeID == uuid.Nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		dto, err := svc.ClockIn(r.Context(), employeeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

func ClockOut(svc attendance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "attendance service unavailable"))
			return
		}

		employeeID := middleware.UserIDFromContext(r.Context())
		if employeeID == uuid.Nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		dto, err := svc.ClockOut(r.Context(), employeeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func MyAttendance(svc attendance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "attendance service unavailable"))
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
