package scheduling

import (
	"time"

	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
)

// DateLayout is the wire format for shift calendar dates.
const DateLayout = "2006-01-02"

// ShiftDTO is the API projection of a shift.
type ShiftDTO struct {
	ID           uuid.UUID  `json:"id"`
	ManagerID    *uuid.UUID `json:"manager_id,omitempty"`
	EmployeeID   uuid.UUID  `json:"employee_id"`
	EmployeeName string     `json:"employee_name,omitempty"`
	Date         string     `json:"date"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	Status       string     `json:"status"`
}

func toDTO(shift models.Shift) ShiftDTO {
	dto := ShiftDTO{
		ID:         shift.ID,
		ManagerID:  shift.ManagerID,
		EmployeeID: shift.EmployeeID,
		Date:       shift.Date.UTC().Format(DateLayout),
		StartTime:  shift.StartTime,
		EndTime:    shift.EndTime,
		Status:     shift.Status,
	}
	if shift.Employee != nil {
		dto.EmployeeName = shift.Employee.FirstName + " " + shift.Employee.LastName
	}
	return dto
}

func toDTOs(shifts []models.Shift) []ShiftDTO {
	dtos := make([]ShiftDTO, 0, len(shifts))
	for _, shift := range shifts {
		dtos = append(dtos, toDTO(shift))
	}
	return dtos
}

// ParseDate parses a "YYYY-MM-DD" calendar date at UTC midnight.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}
