package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

// AvailabilityWindow is a recurring weekly interval during which the owning
// employee may be scheduled. Times are "HH:MM" clock strings, minute
// resolution.
type AvailabilityWindow struct {
	ID        uuid.UUID     `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID     `gorm:"column:user_id;type:uuid;not null;index"`
	Day       enums.Weekday `gorm:"column:day;type:text;not null"`
	StartTime string        `gorm:"column:start_time;not null"`
	EndTime   string        `gorm:"column:end_time;not null"`
	CreatedAt time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}
