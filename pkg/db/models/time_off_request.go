package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

// TimeOffRequest covers an inclusive date range. ManagerID records who
// decided the request once it leaves Pending.
type TimeOffRequest struct {
	ID         uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	EmployeeID uuid.UUID           `gorm:"column:employee_id;type:uuid;not null;index"`
	StartDate  time.Time           `gorm:"column:start_date;not null"`
	EndDate    time.Time           `gorm:"column:end_date;not null"`
	Reason     string              `gorm:"column:reason;not null"`
	Status     enums.RequestStatus `gorm:"column:status;type:text;not null;default:Pending"`
	ManagerID  *uuid.UUID          `gorm:"column:manager_id;type:uuid"`
	Employee   *User               `gorm:"foreignKey:EmployeeID"`
	CreatedAt  time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
