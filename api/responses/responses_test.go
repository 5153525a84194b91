package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
)

func TestWriteSuccessEnvelope(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteSuccess(resp, map[string]string{"hello": "world"})

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %s", ct)
	}
	var envelope struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data["hello"] != "world" {
		t.Fatalf("unexpected data %v", envelope.Data)
	}
}

func TestWriteErrorStatusMapping(t *testing.T) {
	cases := []struct {
		code pkgerrors.Code
		want int
	}{
		{pkgerrors.CodeValidation, http.StatusBadRequest},
		{pkgerrors.CodeUnauthorized, http.StatusUnauthorized},
		{pkgerrors.CodeForbidden, http.StatusForbidden},
		{pkgerrors.CodeNotFound, http.StatusNotFound},
		{pkgerrors.CodeConflict, http.StatusConflict},
		{pkgerrors.CodeStateConflict, http.StatusUnprocessableEntity},
		{pkgerrors.CodeRateLimit, http.StatusTooManyRequests},
		{pkgerrors.CodeInternal, http.StatusInternalServerError},
		{pkgerrors.CodeDependency, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			resp := httptest.NewRecorder()
			WriteError(context.Background(), nil, resp, pkgerrors.New(tc.code, "boom"))
			if resp.Code != tc.want {
				t.Fatalf("expected %d got %d", tc.want, resp.Code)
			}
		})
	}
}

func TestWriteErrorOwnMessageForClientCodes(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteError(context.Background(), nil, resp, pkgerrors.New(pkgerrors.CodeConflict, "email already registered"))

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Error.Code != "CONFLICT" {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
	if envelope.Error.Message != "email already registered" {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}

func TestWriteErrorHidesInternalMessage(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteError(context.Background(), nil, resp, pkgerrors.New(pkgerrors.CodeInternal, "db password leaked in message"))

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Error.Message == "db password leaked in message" {
		t.Fatal("internal message must not reach clients")
	}
}

func TestWriteErrorWrapsPlainErrors(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteError(context.Background(), nil, resp, errors.New("plain failure"))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Error.Code != "INTERNAL_ERROR" {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
}

func TestWriteErrorIncludesValidationDetails(t *testing.T) {
	err := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
		WithDetails(map[string]any{"email": "must be a valid email address"})

	resp := httptest.NewRecorder()
	WriteError(context.Background(), nil, resp, err)

	var envelope struct {
		Error struct {
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if er := json.Unmarshal(resp.Body.Bytes(), &envelope); er != nil {
		t.Fatalf("unmarshal response: %v", er)
	}
	if envelope.Error.Details["email"] != "must be a valid email address" {
		t.Fatalf("unexpected details %v", envelope.Error.Details)
	}
}
