package products

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/quickcart/quickcart-backend/pkg/db/models"
	"github.com/quickcart/quickcart-backend/pkg/pagination"
)

// Repository exposes product persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a products repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new listing.
func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(product).Error
}

// List returns a page of products, newest first. A cursor points at the
// last row of the previous page.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]models.Product, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Order("created_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit))

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	products := []models.Product{}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListBySeller returns every listing owned by the user, newest first.
func (r *Repository) ListBySeller(ctx context.Context, userID string) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// CountByCategory reports how many listings reference the category name.
func (r *Repository) CountByCategory(ctx context.Context, name string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("category = ?", name).
		Count(&count).Error
	return count, err
}

// OfferPricesByIDs resolves offer prices for cart pricing. Ids that do not
// parse as UUIDs or match no row are simply absent from the result.
func (r *Repository) OfferPricesByIDs(ctx context.Context, ids []string) (map[string]decimal.Decimal, error) {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		if id, err := uuid.Parse(raw); err == nil {
			parsed = append(parsed, id)
		}
	}

	prices := map[string]decimal.Decimal{}
	if len(parsed) == 0 {
		return prices, nil
	}

	rows := []struct {
		ID         uuid.UUID
		OfferPrice decimal.Decimal
	}{}
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("id", "offer_price").
		Where("id IN ?", parsed).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		prices[row.ID.String()] = row.OfferPrice
	}
	return prices, nil
}
