package controllers

import (
	"net/http"

	"github.com/quickcart/quickcart-backend/api/middleware"
	"github.com/quickcart/quickcart-backend/api/responses"
	"github.com/quickcart/quickcart-backend/api/validators"
	cartsvc "github.com/quickcart/quickcart-backend/internal/cart"
	dbtypes "github.com/quickcart/quickcart-backend/pkg/db/types"
	pkgerrors "github.com/quickcart/quickcart-backend/pkg/errors"
	"github.com/quickcart/quickcart-backend/pkg/logger"
)

type updateCartRequest struct {
	// an empty mapping is a valid replacement (clears the cart)
	CartData dbtypes.CartItems `json:"cartData"`
}

// UpdateCart replaces the caller's whole cart mapping.
func UpdateCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		var payload updateCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Replace(r.Context(), userID, payload.CartData); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "Cart Updated", nil)
	}
}

// GetCart returns the stored mapping with its derived totals.
func GetCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		snap, err := svc.Get(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "", responses.Payload{
			"cartItems": snap.Items,
			"count":     snap.Count,
			"amount":    snap.Amount,
		})
	}
}
