package controllers

import (
	"net/http"

	"github.com/shiftlinehq/shiftline-backend/api/responses"
	"github.com/shiftlinehq/shiftline-backend/api/validators"
	"github.com/shiftlinehq/shiftline-backend/internal/users"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
	"github.com/shiftlinehq/shiftline-backend/pkg/logger"
)

type windowRequest struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

func (req windowRequest) toInput() (users.WindowInput, error) {
	day, err := enums.ParseWeekday(req.Day)
	if err != nil {
		return users.WindowInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid day")
	}
	return users.WindowInput{Day: day, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func ListAvailability(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		userID, err := urlUUID(r, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		windows, err := svc.ListAvailability(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, windows)
	}
}

func AddAvailability(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		userID, err := urlUUID(r, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req windowRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := req.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.AddAvailability(r.Context(), userID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

func UpdateAvailability(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		userID, err := urlUUID(r, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		windowID, err := urlUUID(r, "windowId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req windowRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := req.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.UpdateAvailability(r.Context(), userID, windowID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func RemoveAvailability(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		userID, err := urlUUID(r, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		windowID, err := urlUUID(r, "windowId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.RemoveAvailability(r.Context(), userID, windowID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
