package users

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

// UserDTO is the API projection of a user. The password hash never leaves
// the service layer.
type UserDTO struct {
	ID               uuid.UUID               `json:"id"`
	FirstName        string                  `json:"first_name"`
	LastName         string                  `json:"last_name"`
	Role             enums.Role              `json:"role"`
	Email            string                  `json:"email"`
	Phone            string                  `json:"phone,omitempty"`
	JobTitle         *string                 `json:"job_title,omitempty"`
	Department       *string                 `json:"department,omitempty"`
	HourlyPayRate    decimal.Decimal         `json:"hourly_pay_rate"`
	EmploymentStatus enums.EmploymentStatus  `json:"employment_status"`
	IsActive         bool                    `json:"is_active"`
	Availability     []AvailabilityWindowDTO `json:"availability,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
}

// AvailabilityWindowDTO is the API projection of one recurring window.
type AvailabilityWindowDTO struct {
	ID        uuid.UUID     `json:"id"`
	Day       enums.Weekday `json:"day"`
	StartTime string        `json:"start_time"`
	EndTime   string        `json:"end_time"`
}

func toDTO(user models.User) UserDTO {
	return UserDTO{
		ID:               user.ID,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Role:             user.Role,
		Email:            user.Email,
		Phone:            user.Phone,
		JobTitle:         user.JobTitle,
		Department:       user.Department,
		HourlyPayRate:    user.HourlyPayRate,
		EmploymentStatus: user.EmploymentStatus,
		IsActive:         user.IsActive,
		Availability:     toWindowDTOs(user.Availability),
		CreatedAt:        user.CreatedAt,
	}
}

func toDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, toDTO(user))
	}
	return dtos
}

func toWindowDTO(window models.AvailabilityWindow) AvailabilityWindowDTO {
	return AvailabilityWindowDTO{
		ID:        window.ID,
		Day:       window.Day,
		StartTime: window.StartTime,
		EndTime:   window.EndTime,
	}
}

func toWindowDTOs(windows []models.AvailabilityWindow) []AvailabilityWindowDTO {
	if len(windows) == 0 {
		return nil
	}
	dtos := make([]AvailabilityWindowDTO, 0, len(windows))
	for _, window := range windows {
		dtos = append(dtos, toWindowDTO(window))
	}
	return dtos
}
