package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quickcart/quickcart-backend/api/responses"
	"github.com/quickcart/quickcart-backend/api/validators"
	catsvc "github.com/quickcart/quickcart-backend/internal/categories"
	pkgerrors "github.com/quickcart/quickcart-backend/pkg/errors"
	"github.com/quickcart/quickcart-backend/pkg/logger"
)

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// AddCategory creates a record in the given namespace.
func AddCategory(svc catsvc.Service, ns catsvc.Namespace, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		var payload categoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.Create(r.Context(), ns, validators.SanitizeString(payload.Name, 64))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, "Category Added", responses.Payload{"category": entry})
	}
}

// ListCategories returns every record in the namespace in insertion order.
func ListCategories(svc catsvc.Service, ns catsvc.Namespace, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		entries, err := svc.List(r.Context(), ns)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "", responses.Payload{"categories": entries})
	}
}

// UpdateCategory renames a sub-category.
func UpdateCategory(svc catsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category id"))
			return
		}

		var payload categoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.Rename(r.Context(), catsvc.NamespaceSub, id, validators.SanitizeString(payload.Name, 64))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "Category Updated", responses.Payload{"category": entry})
	}
}

// DeleteCategory removes a sub-category unless products still reference it.
func DeleteCategory(svc catsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category id"))
			return
		}

		if err := svc.Remove(r.Context(), catsvc.NamespaceSub, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "Category Deleted", nil)
	}
}
