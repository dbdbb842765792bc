package middleware

import (
	"net/http"

	"github.com/quickcart/quickcart-backend/api/responses"
	"github.com/quickcart/quickcart-backend/pkg/enums"
	pkgerrors "github.com/quickcart/quickcart-backend/pkg/errors"
	"github.com/quickcart/quickcart-backend/pkg/logger"
)

// RequireRole rejects requests whose resolved role does not match.
func RequireRole(role enums.ActorRole, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actual, err := enums.ParseActorRole(RoleFromContext(r.Context()))
			if err != nil || actual != role {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "not authorized"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSeller guards catalog mutation endpoints.
func RequireSeller(logg *logger.Logger) func(http.Handler) http.Handler {
	return RequireRole(enums.RoleSeller, logg)
}
