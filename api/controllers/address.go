package controllers

import (
	"net/http"

	"github.com/quickcart/quickcart-backend/api/middleware"
	"github.com/quickcart/quickcart-backend/api/responses"
	"github.com/quickcart/quickcart-backend/api/validators"
	addresssvc "github.com/quickcart/quickcart-backend/internal/address"
	pkgerrors "github.com/quickcart/quickcart-backend/pkg/errors"
	"github.com/quickcart/quickcart-backend/pkg/logger"
)

type addAddressRequest struct {
	Address addresssvc.CreateAddressDTO `json:"address"`
}

// AddAddress validates and stores a delivery address for the caller.
func AddAddress(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		var payload addAddressRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		addr, err := svc.Add(r.Context(), userID, payload.Address)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, "Address Added", responses.Payload{"address": addr})
	}
}

// GetAddresses lists the caller's saved delivery addresses.
func GetAddresses(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		addresses, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "", responses.Payload{"addresses": addresses})
	}
}
