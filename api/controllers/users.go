package controllers

import (
	"net/http"

	"github.com/quickcart/quickcart-backend/api/middleware"
	"github.com/quickcart/quickcart-backend/api/responses"
	"github.com/quickcart/quickcart-backend/api/validators"
	usersvc "github.com/quickcart/quickcart-backend/internal/users"
	pkgerrors "github.com/quickcart/quickcart-backend/pkg/errors"
	"github.com/quickcart/quickcart-backend/pkg/logger"
)

const (
	syncEventUserCreated = "user.created"
	syncEventUserUpdated = "user.updated"
	syncEventUserDeleted = "user.deleted"
)

type syncUserRequest struct {
	Type string       `json:"type" validate:"required"`
	Data syncUserData `json:"data"`
}

// delete events only carry the id, so everything else stays optional here
// and the service enforces what each event type needs.
type syncUserData struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

func (d syncUserData) toDTO() usersvc.SyncUserDTO {
	return usersvc.SyncUserDTO{
		ID:       d.ID,
		Name:     d.Name,
		Email:    d.Email,
		ImageURL: d.ImageURL,
	}
}

// SyncUser ingests identity-provider webhook events and mirrors them into
// the local user table.
func SyncUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		var payload syncUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		switch payload.Type {
		case syncEventUserCreated, syncEventUserUpdated:
			user, err := svc.Sync(r.Context(), payload.Data.toDTO())
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, "User Synced", responses.Payload{"user": user})
		case syncEventUserDeleted:
			if err := svc.Remove(r.Context(), payload.Data.ID); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, "User Removed", nil)
		default:
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unsupported event type"))
		}
	}
}

// UserData returns the caller's own record including the stored cart.
func UserData(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		user, err := svc.GetByID(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "", responses.Payload{"user": user})
	}
}
