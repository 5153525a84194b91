package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/api/middleware"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
	"github.com/shiftlinehq/shiftline-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func addRouteParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func asUser(req *http.Request, userID uuid.UUID, role enums.Role) *http.Request {
	return req.WithContext(middleware.WithUser(req.Context(), userID, role))
}
