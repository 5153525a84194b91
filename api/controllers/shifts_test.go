package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/internal/scheduling"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
)

type testSchedulingService struct {
	createFn      func(ctx context.Context, managerID uuid.UUID, input scheduling.CreateShiftInput) (*scheduling.ShiftDTO, error)
	listFn        func(ctx context.Context) ([]scheduling.ShiftDTO, error)
	reassignFn    func(ctx context.Context, shiftID, employeeID uuid.UUID) (*scheduling.ShiftDTO, error)
	deleteFn      func(ctx context.Context, shiftID uuid.UUID) error
	weekFn        func(ctx context.Context, from time.Time) ([]scheduling.ShiftDTO, error)
	exportWeekFn  func(ctx context.Context, from time.Time) ([]byte, error)
	forEmployeeFn func(ctx context.Context, employeeID uuid.UUID) ([]scheduling.ShiftDTO, error)
}

func (s *testSchedulingService) Create(ctx context.Context, managerID uuid.UUID, input scheduling.CreateShiftInput) (*scheduling.ShiftDTO, error) {
	if s.createFn != nil {
		return s.createFn(ctx, managerID, input)
	}
	return nil, nil
}

func (s *testSchedulingService) List(ctx context.Context) ([]scheduling.ShiftDTO, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *testSchedulingService) Reassign(ctx context.Context, shiftID, employeeID uuid.UUID) (*scheduling.ShiftDTO, error) {
	if s.reassignFn != nil {
		return s.reassignFn(ctx, shiftID, employeeID)
	}
	return nil, nil
}

func (s *testSchedulingService) Delete(ctx context.Context, shiftID uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, shiftID)
	}
	return nil
}

func (s *testSchedulingService) Week(ctx context.Context, from time.Time) ([]scheduling.ShiftDTO, error) {
	if s.weekFn != nil {
		return s.weekFn(ctx, from)
	}
	return nil, nil
}

func (s *testSchedulingService) ExportWeek(ctx context.Context, from time.Time) ([]byte, error) {
	if s.exportWeekFn != nil {
		return s.exportWeekFn(ctx, from)
	}
	return nil, nil
}

func (s *testSchedulingService) ForEmployee(ctx context.Context, employeeID uuid.UUID) ([]scheduling.ShiftDTO, error) {
	if s.forEmployeeFn != nil {
		return s.forEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func TestCreateShiftSuccess(t *testing.T) {
	managerID := uuid.New()
	employeeID := uuid.New()
	var gotManager uuid.UUID
	var gotInput scheduling.CreateShiftInput
	svc := &testSchedulingService{
		createFn: func(ctx context.Context, mid uuid.UUID, input scheduling.CreateShiftInput) (*scheduling.ShiftDTO, error) {
			gotManager = mid
			gotInput = input
			return &scheduling.ShiftDTO{ID: uuid.New(), EmployeeID: input.EmployeeID}, nil
		},
	}

	body := `{"employee_id":"` + employeeID.String() + `","date":"2024-06-03","start_time":"09:00","end_time":"17:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/shifts", strings.NewReader(body))
	req = asUser(req, managerID, enums.RoleManager)
	resp := httptest.NewRecorder()
	CreateShift(svc, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if gotManager != managerID {
		t.Fatalf("unexpected manager %s", gotManager)
	}
	if gotInput.EmployeeID != employeeID {
		t.Fatalf("unexpected employee %s", gotInput.EmployeeID)
	}
	if !gotInput.Date.Equal(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %s", gotInput.Date)
	}
}

func TestCreateShiftBadDate(t *testing.T) {
	body := `{"employee_id":"` + uuid.NewString() + `","date":"06/03/2024","start_time":"09:00","end_time":"17:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/shifts", strings.NewReader(body))
	resp := httptest.NewRecorder()
	CreateShift(&testSchedulingService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCreateShiftConflictPassesThrough(t *testing.T) {
	svc := &testSchedulingService{
		createFn: func(ctx context.Context, mid uuid.UUID, input scheduling.CreateShiftInput) (*scheduling.ShiftDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Shift conflict detected. Please check for overlapping shifts.")
		},
	}

	body := `{"employee_id":"` + uuid.NewString() + `","date":"2024-06-03","start_time":"09:00","end_time":"17:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/shifts", strings.NewReader(body))
	resp := httptest.NewRecorder()
	CreateShift(svc, testLogger())(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !strings.Contains(envelope.Error.Message, "Shift conflict detected") {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}

func TestReassignShiftSuccess(t *testing.T) {
	shiftID := uuid.New()
	employeeID := uuid.New()
	svc := &testSchedulingService{
		reassignFn: func(ctx context.Context, sid, eid uuid.UUID) (*scheduling.ShiftDTO, error) {
			if sid != shiftID || eid != employeeID {
				t.Fatalf("unexpected args %s %s", sid, eid)
			}
			return &scheduling.ShiftDTO{ID: sid, EmployeeID: eid}, nil
		},
	}

	body := `{"employee_id":"` + employeeID.String() + `"}`
	req := httptest.NewRequest(http.MethodPut, "/api/shifts/"+shiftID.String()+"/assign", strings.NewReader(body))
	req = addRouteParam(req, "id", shiftID.String())
	resp := httptest.NewRecorder()
	ReassignShift(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
}

func TestWeekShiftsBadDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/shifts/week/tomorrow", nil)
	req = addRouteParam(req, "date", "tomorrow")
	resp := httptest.NewRecorder()
	WeekShifts(&testSchedulingService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestExportWeekShiftsHeaders(t *testing.T) {
	svc := &testSchedulingService{
		exportWeekFn: func(ctx context.Context, from time.Time) ([]byte, error) {
			return []byte("workbook-bytes"), nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/shifts/week/2024-06-03/export", nil)
	req = addRouteParam(req, "date", "2024-06-03")
	resp := httptest.NewRecorder()
	ExportWeekShifts(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Fatalf("unexpected content type %s", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); !strings.Contains(cd, "shifts-week-2024-06-03.xlsx") {
		t.Fatalf("unexpected disposition %s", cd)
	}
	if resp.Body.String() != "workbook-bytes" {
		t.Fatal("body not streamed")
	}
}

func TestMyShiftsRequiresIdentity(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/shifts/userShifts", nil)
	resp := httptest.NewRecorder()
	MyShifts(&testSchedulingService{}, testLogger())(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestDeleteShiftNotFound(t *testing.T) {
	svc := &testSchedulingService{
		deleteFn: func(ctx context.Context, shiftID uuid.UUID) error {
			return pkgerrors.New(pkgerrors.CodeNotFound, "shift not found")
		},
	}
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodDelete, "/api/shifts/"+id, nil)
	req = addRouteParam(req, "id", id)
	resp := httptest.NewRecorder()
	DeleteShift(svc, testLogger())(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
