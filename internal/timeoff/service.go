package timeoff

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
	"github.com/shiftlinehq/shiftline-backend/pkg/logger"
	"github.com/shiftlinehq/shiftline-backend/pkg/mailer"
)

// DateLayout is the wire format for time-off dates.
const DateLayout = "2006-01-02"

type requestRepository interface {
	Create(ctx context.Context, req *models.TimeOffRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.TimeOffRequest, error)
	ListPending(ctx context.Context) ([]models.TimeOffRequest, error)
	ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.TimeOffRequest, error)
	Update(ctx context.Context, req *models.TimeOffRequest) error
}

// RequestDTO is the API projection of a time-off request.
type RequestDTO struct {
	ID           uuid.UUID           `json:"id"`
	EmployeeID   uuid.UUID           `json:"employee_id"`
	EmployeeName string              `json:"employee_name,omitempty"`
	StartDate    string              `json:"start_date"`
	EndDate      string              `json:"end_date"`
	Reason       string              `json:"reason"`
	Status       enums.RequestStatus `json:"status"`
	ManagerID    *uuid.UUID          `json:"manager_id,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

// CreateRequestInput is a new time-off request; dates are inclusive.
type CreateRequestInput struct {
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

// Service exposes the time-off workflow.
type Service interface {
	Create(ctx context.Context, employeeID uuid.UUID, input CreateRequestInput) (*RequestDTO, error)
	ListPending(ctx context.Context) ([]RequestDTO, error)
	ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]RequestDTO, error)
	Decide(ctx context.Context, id, managerID uuid.UUID, status enums.RequestStatus) (*RequestDTO, error)
}

// ServiceParams bundles the time-off workflow dependencies. Mail is
// optional; a nil sender disables notifications.
type ServiceParams struct {
	Repo   requestRepository
	Mail   mailer.Sender
	Logger *logger.Logger
}

type service struct {
	repo requestRepository
	mail mailer.Sender
	logg *logger.Logger
}

// NewService constructs the time-off service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("time-off repository is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{repo: params.Repo, mail: params.Mail, logg: params.Logger}, nil
}

func (s *service) Create(ctx context.Context, employeeID uuid.UUID, input CreateRequestInput) (*RequestDTO, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "end_date cannot be before start_date")
	}

	req := &models.TimeOffRequest{
		EmployeeID: employeeID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Reason:     input.Reason,
		Status:     enums.RequestPending,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create time-off request")
	}

	dto := toDTO(*req)
	return &dto, nil
}

func (s *service) ListPending(ctx context.Context) ([]RequestDTO, error) {
	reqs, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pending requests")
	}
	return toDTOs(reqs), nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]RequestDTO, error) {
	reqs, err := s.repo.ListForEmployee(ctx, employeeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list employee requests")
	}
	return toDTOs(reqs), nil
}

// Decide approves or rejects a pending request, recording the manager.
// Decisions are one-way; a decided request cannot transition again. The
// notification email is best effort and never fails the decision.
func (s *service) Decide(ctx context.Context, id, managerID uuid.UUID, status enums.RequestStatus) (*RequestDTO, error) {
	if status != enums.RequestApproved && status != enums.RequestRejected {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be Approved or Rejected")
	}

	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "time-off request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load time-off request")
	}
	if req.Status.IsTerminal() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "time-off request already decided").
			WithDetails(map[string]any{"status": req.Status})
	}

	req.Status = status
	req.ManagerID = &managerID
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update time-off request")
	}

	s.notify(ctx, req)

	dto := toDTO(*req)
	return &dto, nil
}

func (s *service) notify(ctx context.Context, req *models.TimeOffRequest) {
	if s.mail == nil || req.Employee == nil || req.Employee.Email == "" {
		return
	}
	subject := fmt.Sprintf("Time-off request %s", req.Status)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your time-off request for %s through %s has been <strong>%s</strong>.</p>",
		req.Employee.FirstName,
		req.StartDate.UTC().Format(DateLayout),
		req.EndDate.UTC().Format(DateLayout),
		req.Status,
	)
	if err := s.mail.Send(ctx, req.Employee.Email, subject, body); err != nil {
		s.logg.Error(ctx, "time-off notification failed", err)
	}
}

func toDTO(req models.TimeOffRequest) RequestDTO {
	dto := RequestDTO{
		ID:         req.ID,
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate.UTC().Format(DateLayout),
		EndDate:    req.EndDate.UTC().Format(DateLayout),
		Reason:     req.Reason,
		Status:     req.Status,
		ManagerID:  req.ManagerID,
		CreatedAt:  req.CreatedAt,
	}
	if req.Employee != nil {
		dto.EmployeeName = req.Employee.FirstName + " " + req.Employee.LastName
	}
	return dto
}

func toDTOs(reqs []models.TimeOffRequest) []RequestDTO {
	dtos := make([]RequestDTO, 0, len(reqs))
	for _, req := range reqs {
		dtos = append(dtos, toDTO(req))
	}
	return dtos
}

// ParseDate parses a "YYYY-MM-DD" date at UTC midnight.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}
