package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/api/middleware"
	"github.com/shiftlinehq/shiftline-backend/api/responses"
	"github.com/shiftlinehq/shiftline-backend/api/validators"
	"github.com/shiftlinehq/shiftline-backend/internal/scheduling"
	"github.com/shiftlinehq/shiftline-backend/internal/users"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
	"github.com/shiftlinehq/shiftline-backend/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type createShiftRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
	Date       string `json:"date" validate:"required"`
	StartTime  string `json:"start_time" validate:"required"`
	EndTime    string `json:"end_time" validate:"required"`
}

type assignShiftRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
}

func CreateShift(svc scheduling.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scheduling service unavailable"))
			return
		}

		var req createShiftRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		employeeID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid employee_id"))
			return
		}
		date, err := scheduling.ParseDate(req.Date)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "date must be YYYY-MM-DD"))
			return
		}

		managerID := middleware.UserIDFromContext(r.Context())
		dto, err := svc.Create(r.Context(), managerID, scheduling.CreateShiftInput{
			EmployeeID: employeeID,
			Date:       date,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

func ListShifts(svc scheduling.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scheduling service unavailable"))
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

// ReassignShift moves an existing shift to another employee after the
// same checks a fresh assignment runs.
func ReassignShift(svc scheduling.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scheduling service unavailable"))
			return
		}

		shiftID, err := urlUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req assignShiftRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		employeeID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid employee_id"))
			return
		}

		dto, err := svc.Reassign(r.Context(), shiftID, employeeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func DeleteShift(svc scheduling.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scheduling service unavailable"))
			return
		}

		shiftID, err := urlUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), shiftID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func WeekShifts(svc scheduling.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scheduling service unavailable"))
			return
		}

		from, err := scheduling.ParseDate(chi.URLParam(r, "date"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "date must be YYYY-MM-DD"))
			return
		}

		dtos, err := svc.Week(r.Context(), from)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// ExportWeekShifts streams the week's schedule as an xlsx download.
func ExportWeekShifts(svc scheduling.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scheduling service unavailable"))
			return
		}

		dateParam := chi.URLParam(r, "date")
		from, err := scheduling.ParseDate(dateParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "date must be YYYY-MM-DD"))
			return
		}

		data, err := svc.ExportWeek(r.Context(), from)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "shifts-week-"+dateParam+".xlsx"))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			logg.Error(r.Context(), "shift.export.write", err)
		}
	}
}

// MyShifts lists the caller's own shifts.
func MyShifts(svc scheduling.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scheduling service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == uuid.Nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		dtos, err := svc.ForEmployee(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

func UserShifts(svc scheduling.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scheduling service unavailable"))
			return
		}

		employeeID, err := urlUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dtos, err := svc.ForEmployee(r.Context(), employeeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// AssignableEmployees lists the active employees a shift can be given to.
func AssignableEmployees(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		dtos, err := svc.ListEmployees(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}
