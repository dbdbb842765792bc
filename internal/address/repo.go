package address

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/quickcart/quickcart-backend/pkg/db/models"
)

// Repository persists delivery addresses.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an address repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new address.
func (r *Repository) Create(ctx context.Context, address *models.Address) error {
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(address).Error
}

// ListByUser returns the user's addresses, oldest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]models.Address, error) {
	rows := []models.Address{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
