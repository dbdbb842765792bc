package users

import (
	"strings"

	"github.com/quickcart/quickcart-backend/pkg/db/models"
	dbtypes "github.com/quickcart/quickcart-backend/pkg/db/types"
)

// SyncUserDTO is the payload the identity provider delivers on account
// create and update events.
type SyncUserDTO struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

func (d SyncUserDTO) ToModel() *models.User {
	return &models.User{
		ID:        strings.TrimSpace(d.ID),
		Name:      strings.TrimSpace(d.Name),
		Email:     strings.TrimSpace(d.Email),
		ImageURL:  strings.TrimSpace(d.ImageURL),
		CartItems: dbtypes.CartItems{},
	}
}
