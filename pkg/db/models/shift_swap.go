package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

// ShiftSwap proposes exchanging the assigned employees of two shifts.
// Approval swaps the employee ids on both referenced shifts.
type ShiftSwap struct {
	ID                uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	RequestedBy       uuid.UUID           `gorm:"column:requested_by;type:uuid;not null;index"`
	RequestedFor      uuid.UUID           `gorm:"column:requested_for;type:uuid;not null;index"`
	RequestedByShift  uuid.UUID           `gorm:"column:requested_by_shift_id;type:uuid;not null"`
	RequestedForShift uuid.UUID           `gorm:"column:requested_for_shift_id;type:uuid;not null"`
	Reason            string              `gorm:"column:reason;not null;default:''"`
	Status            enums.RequestStatus `gorm:"column:status;type:text;not null;default:Pending"`
	CreatedAt         time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
