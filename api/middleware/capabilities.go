package middleware

import (
	"net/http"

	"github.com/shiftlinehq/shiftline-backend/api/responses"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
	"github.com/shiftlinehq/shiftline-backend/pkg/logger"
)

// Require gates a route on one capability of the authenticated role. Role
// names never appear at call sites; routes declare the capability they
// need and the role-to-capability mapping lives in one place.
func Require(cap enums.Capability, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !RoleFromContext(r.Context()).Can(cap) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient permissions"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
