package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

// AttendanceLog records one clock-in/clock-out pair. An employee has at
// most one open ("Clocked In") log at a time; closed logs are immutable.
type AttendanceLog struct {
	ID           uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	EmployeeID   uuid.UUID              `gorm:"column:employee_id;type:uuid;not null;index"`
	ClockInTime  time.Time              `gorm:"column:clock_in_time;not null"`
	ClockOutTime *time.Time             `gorm:"column:clock_out_time"`
	TotalHours   float64                `gorm:"column:total_hours;not null;default:0"`
	Status       enums.AttendanceStatus `gorm:"column:status;type:text;not null"`
	CreatedAt    time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
