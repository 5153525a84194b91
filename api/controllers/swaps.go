package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/api/middleware"
	"github.com/shiftlinehq/shiftline-backend/api/responses"
	"github.com/shiftlinehq/shiftline-backend/api/validators"
	"github.com/shiftlinehq/shiftline-backend/internal/swaps"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
	"github.com/shiftlinehq/shiftline-backend/pkg/logger"
)

type createSwapRequest struct {
	RequestedFor      string `json:"requested_for" validate:"required,uuid"`
	RequestedByShift  string `json:"requested_by_shift_id" validate:"required,uuid"`
	RequestedForShift string `json:"requested_for_shift_id" validate:"required,uuid"`
	Reason            string `json:"reason,omitempty" validate:"max=500"`
}

func CreateSwap(svc swaps.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "swaps service unavailable"))
			return
		}

		var req createSwapRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		requestedFor, err := uuid.Parse(req.RequestedFor)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid requested_for"))
			return
		}
		byShift, err := uuid.Parse(req.RequestedByShift)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid requested_by_shift_id"))
			return
		}
		forShift, err := uuid.Parse(req.RequestedForShift)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid requested_for_shift_id"))
			return
		}

		requestedBy := middleware.UserIDFromContext(r.Context())
		if requestedBy == uuid.Nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		dto, err := svc.Create(r.Context(), requestedBy, swaps.CreateSwapInput{
			RequestedFor:      requestedFor,
			RequestedByShift:  byShift,
			RequestedForShift: forShift,
			Reason:            req.Reason,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

func ListPendingSwaps(svc swaps.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "swaps service unavailable"))
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

func MySwaps(svc swaps.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "swaps service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == uuid.Nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		dtos, err := svc.ListForUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

func ApproveSwap(svc swaps.Service, logg *logger.Logger) http.HandlerFunc {
	return decideSwap(svc, logg, swaps.Service.Approve)
}

func RejectSwap(svc swaps.Service, logg *logger.Logger) http.HandlerFunc {
	return decideSwap(svc, logg, swaps.Service.Reject)
}

func decideSwap(svc swaps.Service, logg *logger.Logger, decide func(swaps.Service, context.Context, uuid.UUID) (*swaps.SwapDTO, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "swaps service unavailable"))
			return
		}

		id, err := urlUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := decide(svc, r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
