package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/internal/users"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
)

func TestRegisterSuccess(t *testing.T) {
	userID := uuid.New()
	svc := &testUsersService{
		registerFn: func(ctx context.Context, req users.RegisterRequest) (*users.AuthResponse, error) {
			if req.Email != "ada@example.com" {
				t.Fatalf("unexpected email %s", req.Email)
			}
			return &users.AuthResponse{Token: "signed-token", Role: enums.RoleEmployee, UserID: userID}, nil
		},
	}

	body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"s3cret-pass","role":"employee"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	resp := httptest.NewRecorder()
	Register(svc, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	var envelope struct {
		Data users.AuthResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.Token != "signed-token" {
		t.Fatal("token missing from response")
	}
	if envelope.Data.UserID != userID {
		t.Fatalf("unexpected user %s", envelope.Data.UserID)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":"ada@example.com"}`))
	resp := httptest.NewRecorder()
	Register(&testUsersService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := &testUsersService{
		loginFn: func(ctx context.Context, req users.LoginRequest) (*users.AuthResponse, error) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		},
	}

	body := `{"email":"ada@example.com","password":"wrong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	Login(svc, testLogger())(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Error.Message != "invalid credentials" {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := &testUsersService{
		loginFn: func(ctx context.Context, req users.LoginRequest) (*users.AuthResponse, error) {
			return &users.AuthResponse{Token: "signed-token", Role: enums.RoleManager, UserID: uuid.New()}, nil
		},
	}

	body := `{"email":"boss@example.com","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	Login(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
}
