package products

import (
	"strings"

	"github.com/lib/pq"

	"github.com/quickcart/quickcart-backend/pkg/db/models"
)

// CreateProductDTO carries the listing fields a seller submits.
type CreateProductDTO struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	OfferPrice  float64  `json:"offerPrice" validate:"required,gt=0"`
	Image       []string `json:"image" validate:"omitempty,dive,url"`
}

func (d CreateProductDTO) ToModel(sellerID string) *models.Product {
	images := d.Image
	if images == nil {
		images = []string{}
	}
	return &models.Product{
		UserID:      sellerID,
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Category:    strings.TrimSpace(d.Category),
		Price:       d.Price,
		OfferPrice:  d.OfferPrice,
		Image:       pq.StringArray(images),
	}
}
