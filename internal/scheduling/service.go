package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
)

// weekSpanDays is the number of days added to the anchor date for week
// queries. The window is inclusive on both ends.
const weekSpanDays = 8

type shiftRepository interface {
	Create(ctx context.Context, shift *models.Shift) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Shift, error)
	ListAll(ctx context.Context) ([]models.Shift, error)
	ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.Shift, error)
	ListForEmployeeBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]models.Shift, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]models.Shift, error)
	Update(ctx context.Context, shift *models.Shift) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type availabilityReader interface {
	ListWindows(ctx context.Context, userID uuid.UUID) ([]models.AvailabilityWindow, error)
}

// CreateShiftInput captures the fields required to schedule a shift.
type CreateShiftInput struct {
	EmployeeID uuid.UUID
	Date       time.Time
	StartTime  string
	EndTime    string
}

// Service exposes shift scheduling operations.
type Service interface {
	Create(ctx context.Context, managerID uuid.UUID, input CreateShiftInput) (*ShiftDTO, error)
	List(ctx context.Context) ([]ShiftDTO, error)
	Reassign(ctx context.Context, shiftID, employeeID uuid.UUID) (*ShiftDTO, error)
	Delete(ctx context.Context, shiftID uuid.UUID) error
	Week(ctx context.Context, from time.Time) ([]ShiftDTO, error)
	ExportWeek(ctx context.Context, from time.Time) ([]byte, error)
	ForEmployee(ctx context.Context, employeeID uuid.UUID) ([]ShiftDTO, error)
}

type service struct {
	repo         shiftRepository
	availability availabilityReader
}

// NewService builds a scheduling service with the provided stores.
func NewService(repo shiftRepository, availability availabilityReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shift repository required")
	}
	if availability == nil {
		return nil, fmt.Errorf("availability reader required")
	}
	return &service{repo: repo, availability: availability}, nil
}

// evaluate runs the conflict checker for the employee against the proposed
// window, loading the stored availability and same-day shifts it needs.
func (s *service) evaluate(ctx context.Context, employeeID uuid.UUID, win ShiftWindow) error {
	availability, err := s.availability.ListWindows(ctx, employeeID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load availability")
	}

	dayStart, dayEnd := DayBounds(win.Date)
	sameDay, err := s.repo.ListForEmployeeBetween(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load same-day shifts")
	}

	decision, err := EvaluateShift(win, availability, sameDay)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shift times")
	}
	if !decision.Available {
		return pkgerrors.New(pkgerrors.CodeConflict, decision.Message).
			WithDetails(map[string]any{"reason": string(decision.Reason)})
	}
	return nil
}

func (s *service) Create(ctx context.Context, managerID uuid.UUID, input CreateShiftInput) (*ShiftDTO, error) {
	date, _ := DayBounds(input.Date)
	win := ShiftWindow{Date: date, StartTime: input.StartTime, EndTime: input.EndTime}

	if err := s.evaluate(ctx, input.EmployeeID, win); err != nil {
		return nil, err
	}

	shift := &models.Shift{
		ManagerID:  &managerID,
		EmployeeID: input.EmployeeID,
		Date:       date,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Status:     models.ShiftStatusAssigned,
	}
	if err := s.repo.Create(ctx, shift); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create shift")
	}

	dto := toDTO(*shift)
	return &dto, nil
}

func (s *service) List(ctx context.Context) ([]ShiftDTO, error) {
	shifts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shifts")
	}
	return toDTOs(shifts), nil
}

// Reassign moves the shift to a new employee after re-running the conflict
// check for them. On rejection the prior assignment is left untouched.
func (s *service) Reassign(ctx context.Context, shiftID, employeeID uuid.UUID) (*ShiftDTO, error) {
	shift, err := s.repo.FindByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shift not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shift")
	}

	win := ShiftWindow{Date: shift.Date, StartTime: shift.StartTime, EndTime: shift.EndTime}
	if err := s.evaluate(ctx, employeeID, win); err != nil {
		return nil, err
	}

	shift.EmployeeID = employeeID
	shift.Status = models.ShiftStatusAssigned
	if err := s.repo.Update(ctx, shift); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update shift")
	}

	dto := toDTO(*shift)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, shiftID uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, shiftID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete shift")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "shift not found")
	}
	return nil
}

func (s *service) Week(ctx context.Context, from time.Time) ([]ShiftDTO, error) {
	shifts, err := s.weekShifts(ctx, from)
	if err != nil {
		return nil, err
	}
	return toDTOs(shifts), nil
}

func (s *service) ForEmployee(ctx context.Context, employeeID uuid.UUID) ([]ShiftDTO, error) {
	shifts, err := s.repo.ListForEmployee(ctx, employeeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list employee shifts")
	}
	return toDTOs(shifts), nil
}

func (s *service) weekShifts(ctx context.Context, from time.Time) ([]models.Shift, error) {
	start, _ := DayBounds(from)
	end := start.AddDate(0, 0, weekSpanDays)
	shifts, err := s.repo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list week shifts")
	}
	return shifts, nil
}
