package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/internal/users"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

func addWindowParams(req *http.Request, userID, windowID string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("userId", userID)
	if windowID != "" {
		routeCtx.URLParams.Add("windowId", windowID)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestAddAvailabilitySuccess(t *testing.T) {
	userID := uuid.New()
	var got users.WindowInput
	svc := &testUsersService{
		addAvailabilityFn: func(ctx context.Context, uid uuid.UUID, input users.WindowInput) (*users.AvailabilityWindowDTO, error) {
			if uid != userID {
				t.Fatalf("unexpected user %s", uid)
			}
			got = input
			return &users.AvailabilityWindowDTO{ID: uuid.New(), Day: input.Day, StartTime: input.StartTime, EndTime: input.EndTime}, nil
		},
	}

	body := `{"day":"Monday","start_time":"08:00","end_time":"16:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+userID.String()+"/availability", strings.NewReader(body))
	req = addWindowParams(req, userID.String(), "")
	resp := httptest.NewRecorder()
	AddAvailability(svc, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if got.Day != enums.Monday {
		t.Fatalf("unexpected day %s", got.Day)
	}
}

func TestAddAvailabilityBadDay(t *testing.T) {
	userID := uuid.NewString()
	body := `{"day":"Funday","start_time":"08:00","end_time":"16:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+userID+"/availability", strings.NewReader(body))
	req = addWindowParams(req, userID, "")
	resp := httptest.NewRecorder()
	AddAvailability(&testUsersService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestRemoveAvailabilityScopedToUser(t *testing.T) {
	userID := uuid.New()
	windowID := uuid.New()
	svc := &testUsersService{
		removeAvailabilityFn: func(ctx context.Context, uid, wid uuid.UUID) error {
			if uid != userID || wid != windowID {
				t.Fatalf("unexpected args %s %s", uid, wid)
			}
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+userID.String()+"/availability/"+windowID.String(), nil)
	req = addWindowParams(req, userID.String(), windowID.String())
	resp := httptest.NewRecorder()
	RemoveAvailability(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
}
