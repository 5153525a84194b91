package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/internal/attendance"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
)

type testAttendanceService struct {
	clockInFn         func(ctx context.Context, employeeID uuid.UUID) (*attendance.LogDTO, error)
	clockOutFn        func(ctx context.Context, employeeID uuid.UUID) (*attendance.LogDTO, error)
	listForEmployeeFn func(ctx context.Context, employeeID uuid.UUID) ([]attendance.LogDTO, error)
}

func (s *testAttendanceService) ClockIn(ctx context.Context, employeeID uuid.UUID) (*attendance.LogDTO, error) {
	if s.clockInFn != nil {
		return s.clockInFn(ctx, employeeID)
	}
	return nil, nil
}

func (s *testAttendanceService) ClockOut(ctx context.Context, employeeID uuid.UUID) (*attendance.LogDTO, error) {
	if s.clockOutFn != nil {
		return s.clockOutFn(ctx, employeeID)
	}
	return nil, nil
}

func (s *testAttendanceService) ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]attendance.LogDTO, error) {
	if s.listForEmployeeFn != nil {
		return s.listForEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func TestClockInSuccess(t *testing.T) {
	employeeID := uuid.New()
	svc := &testAttendanceService{
		clockInFn: func(ctx context.Context, eid uuid.UUID) (*attendance.LogDTO, error) {
			if eid != employeeID {
				t.Fatalf("unexpected employee %s", eid)
			}
			return &attendance.LogDTO{ID: uuid.New(), EmployeeID: eid, ClockInTime: time.Now().UTC()}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/clock/in", nil)
	req = asUser(req, employeeID, enums.RoleEmployee)
	resp := httptest.NewRecorder()
	ClockIn(svc, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d", resp.Code)
	}
}

func TestClockInAlreadyOpen(t *testing.T) {
	svc := &testAttendanceService{
		clockInFn: func(ctx context.Context, eid uuid.UUID) (*attendance.LogDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "already clocked in")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/clock/in", nil)
	req = asUser(req, uuid.New(), enums.RoleEmployee)
	resp := httptest.NewRecorder()
	ClockIn(svc, testLogger())(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
}

func TestClockOutRequiresIdentity(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/clock/out", nil)
	resp := httptest.NewRecorder()
	ClockOut(&testAttendanceService{}, testLogger())(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestMyAttendanceSuccess(t *testing.T) {
	employeeID := uuid.New()
	svc := &testAttendanceService{
		listForEmployeeFn: func(ctx context.Context, eid uuid.UUID) ([]attendance.LogDTO, error) {
			return []attendance.LogDTO{{ID: uuid.New(), EmployeeID: eid, TotalHours: 7.75}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/clock", nil)
	req = asUser(req, employeeID, enums.RoleEmployee)
	resp := httptest.NewRecorder()
	MyAttendance(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
}
