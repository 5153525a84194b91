package models

import (
	"time"

	"github.com/google/uuid"
)

// ShiftStatusAssigned is the only status the scheduler sets today.
const ShiftStatusAssigned = "Assigned"

// Shift is one scheduled work interval on a calendar date. Date is stored
// at UTC midnight; start/end are "HH:MM" clock strings.
type Shift struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ManagerID  *uuid.UUID `gorm:"column:manager_id;type:uuid"`
	EmployeeID uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index:idx_shifts_employee_date"`
	Date       time.Time  `gorm:"column:date;not null;index:idx_shifts_employee_date"`
	StartTime  string     `gorm:"column:start_time;not null"`
	EndTime    string     `gorm:"column:end_time;not null"`
	Status     string     `gorm:"column:status;not null;default:Assigned"`
	Employee   *User      `gorm:"foreignKey:EmployeeID"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
