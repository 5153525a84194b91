package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

// User represents an employee account. Availability windows hang off the
// user and are loaded alongside it for scheduling decisions.
type User struct {
	ID               uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	FirstName        string                 `gorm:"column:first_name;not null"`
	LastName         string                 `gorm:"column:last_name;not null"`
	Role             enums.Role             `gorm:"column:role;type:text;not null"`
	Email            string                 `gorm:"column:email;type:text;not null;uniqueIndex"`
	Phone            string                 `gorm:"column:phone"`
	JobTitle         *string                `gorm:"column:job_title"`
	Department       *string                `gorm:"column:department"`
	HourlyPayRate    decimal.Decimal        `gorm:"column:hourly_pay_rate;type:numeric(10,2);not null"`
	EmploymentStatus enums.EmploymentStatus `gorm:"column:employment_status;type:text;not null"`
	// No default tag; gorm skips zero values that carry one, so a false
	// here must always reach the insert. Callers set it explicitly.
	IsActive bool `gorm:"column:is_active;not null"`
	PasswordHash     string                 `gorm:"column:password_hash;not null"`
	Availability     []AvailabilityWindow   `gorm:"foreignKey:UserID"`
	CreatedAt        time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
