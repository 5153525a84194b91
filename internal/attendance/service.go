package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
)

type logRepository interface {
	Create(ctx context.Context, log *models.AttendanceLog) error
	FindOpen(ctx context.Context, employeeID uuid.UUID) (*models.AttendanceLog, error)
	ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.AttendanceLog, error)
	Update(ctx context.Context, log *models.AttendanceLog) error
}

// LogDTO is the API projection of an attendance log.
type LogDTO struct {
	ID           uuid.UUID              `json:"id"`
	EmployeeID   uuid.UUID              `json:"employee_id"`
	ClockInTime  time.Time              `json:"clock_in_time"`
	ClockOutTime *time.Time             `json:"clock_out_time,omitempty"`
	TotalHours   float64                `json:"total_hours"`
	Status       enums.AttendanceStatus `json:"status"`
}

// Service exposes clock-in/clock-out operations.
type Service interface {
	ClockIn(ctx context.Context, employeeID uuid.UUID) (*LogDTO, error)
	ClockOut(ctx context.Context, employeeID uuid.UUID) (*LogDTO, error)
	ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]LogDTO, error)
}

type service struct {
	repo logRepository
	now  func() time.Time
}

// NewService constructs the attendance service. The clock defaults to
// time.Now and is injectable for tests.
func NewService(repo logRepository, now func() time.Time) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("attendance repository is required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, now: now}, nil
}

// ClockIn opens a new log. An employee can hold at most one open log.
func (s *service) ClockIn(ctx context.Context, employeeID uuid.UUID) (*LogDTO, error) {
	_, err := s.repo.FindOpen(ctx, employeeID)
	if err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "already clocked in")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check open log")
	}

	log := &models.AttendanceLog{
		EmployeeID:  employeeID,
		ClockInTime: s.now().UTC(),
		Status:      enums.AttendanceClockedIn,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create attendance log")
	}

	dto := toDTO(*log)
	return &dto, nil
}

// ClockOut closes the open log and computes total hours as the elapsed
// duration in fractional hours. Closed logs never change again.
func (s *service) ClockOut(ctx context.Context, employeeID uuid.UUID) (*LogDTO, error) {
	log, err := s.repo.FindOpen(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "not clocked in")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check open log")
	}

	out := s.now().UTC()
	log.ClockOutTime = &out
	log.TotalHours = out.Sub(log.ClockInTime).Hours()
	log.Status = enums.AttendanceClockedOut
	if err := s.repo.Update(ctx, log); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update attendance log")
	}

	dto := toDTO(*log)
	return &dto, nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]LogDTO, error) {
	logs, err := s.repo.ListForEmployee(ctx, employeeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list attendance logs")
	}
	dtos := make([]LogDTO, 0, len(logs))
	for _, log := range logs {
		dtos = append(dtos, toDTO(log))
	}
	return dtos, nil
}

func toDTO(log models.AttendanceLog) LogDTO {
	return LogDTO{
		ID:           log.ID,
		EmployeeID:   log.EmployeeID,
		ClockInTime:  log.ClockInTime,
		ClockOutTime: log.ClockOutTime,
		TotalHours:   log.TotalHours,
		Status:       log.Status,
	}
}
