package users

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quickcart/quickcart-backend/pkg/db/models"
	dbtypes "github.com/quickcart/quickcart-backend/pkg/db/types"
)

// Repository exposes user-related persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpsertFromSync inserts or refreshes the account row for a provider sync
// event. The cart column is untouched on conflict so a profile update never
// clobbers an existing cart.
func (r *Repository) UpsertFromSync(ctx context.Context, dto SyncUserDTO) (*models.User, error) {
	user := dto.ToModel()
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "image_url", "updated_at"}),
		}).
		Create(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindByID loads a user by the provider-issued id.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ReplaceCart overwrites the entire cart column and reports how many rows
// the write touched. Zero rows means the account does not exist.
func (r *Repository) ReplaceCart(ctx context.Context, userID string, items dbtypes.CartItems) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("cart_items", items)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Delete removes the account row for a provider delete event.
func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
