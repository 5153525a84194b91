package swaps

import (
	"time"

	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

// SwapDTO is the API projection of a swap request.
type SwapDTO struct {
	ID                uuid.UUID           `json:"id"`
	RequestedBy       uuid.UUID           `json:"requested_by"`
	RequestedFor      uuid.UUID           `json:"requested_for"`
	RequestedByShift  uuid.UUID           `json:"requested_by_shift_id"`
	RequestedForShift uuid.UUID           `json:"requested_for_shift_id"`
	Reason            string              `json:"reason,omitempty"`
	Status            enums.RequestStatus `json:"status"`
	CreatedAt         time.Time           `json:"created_at"`
}

func toDTO(swap models.ShiftSwap) SwapDTO {
	return SwapDTO{
		ID:                swap.ID,
		RequestedBy:       swap.RequestedBy,
		RequestedFor:      swap.RequestedFor,
		RequestedByShift:  swap.RequestedByShift,
		RequestedForShift: swap.RequestedForShift,
		Reason:            swap.Reason,
		Status:            swap.Status,
		CreatedAt:         swap.CreatedAt,
	}
}

func toDTOs(swaps []models.ShiftSwap) []SwapDTO {
	dtos := make([]SwapDTO, 0, len(swaps))
	for _, swap := range swaps {
		dtos = append(dtos, toDTO(swap))
	}
	return dtos
}
