package products

import (
	"context"
	"fmt"
	"strings"

	"github.com/quickcart/quickcart-backend/pkg/db/models"
	pkgerrors "github.com/quickcart/quickcart-backend/pkg/errors"
	"github.com/quickcart/quickcart-backend/pkg/pagination"
)

type productStore interface {
	Create(ctx context.Context, product *models.Product) error
	List(ctx context.Context, params pagination.Params) ([]models.Product, error)
	ListBySeller(ctx context.Context, userID string) ([]models.Product, error)
}

// Page is one slice of the public listing plus the cursor for the next one.
type Page struct {
	Products   []models.Product `json:"products"`
	NextCursor string           `json:"nextCursor,omitempty"`
}

// Service exposes catalog listing operations.
type Service interface {
	Create(ctx context.Context, sellerID string, dto CreateProductDTO) (*models.Product, error)
	List(ctx context.Context, params pagination.Params) (*Page, error)
	ListBySeller(ctx context.Context, sellerID string) ([]models.Product, error)
}

type service struct {
	repo productStore
}

// NewService builds a products service backed by the provided repo.
func NewService(repo productStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, sellerID string, dto CreateProductDTO) (*models.Product, error) {
	if strings.TrimSpace(sellerID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "seller id is required")
	}
	if strings.TrimSpace(dto.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Product name is required")
	}
	if strings.TrimSpace(dto.Category) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Category is required")
	}
	if dto.Price <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Price must be positive")
	}
	if dto.OfferPrice <= 0 || dto.OfferPrice > dto.Price {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Offer price must be positive and not exceed price")
	}

	product := dto.ToModel(sellerID)
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return product, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*Page, error) {
	if _, err := pagination.ParseCursor(params.Cursor); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	rows, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	page := &Page{Products: rows}
	if len(rows) > limit {
		page.Products = rows[:limit]
		last := page.Products[limit-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}
	return page, nil
}

func (s *service) ListBySeller(ctx context.Context, sellerID string) ([]models.Product, error) {
	if strings.TrimSpace(sellerID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "seller id is required")
	}
	rows, err := s.repo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list seller products")
	}
	return rows, nil
}
