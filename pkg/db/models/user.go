package models

import (
	"time"

	dbtypes "github.com/quickcart/quickcart-backend/pkg/db/types"
)

// User mirrors an identity-provider account. The primary key is the id the
// provider issued, so sync events can upsert without a local lookup table.
type User struct {
	ID        string            `gorm:"column:id;type:text;primaryKey" json:"id"`
	Name      string            `gorm:"column:name;not null" json:"name"`
	Email     string            `gorm:"column:email;type:text;not null;uniqueIndex" json:"email"`
	ImageURL  string            `gorm:"column:image_url;not null" json:"imageUrl"`
	CartItems dbtypes.CartItems `gorm:"column:cart_items;type:jsonb;not null;default:'{}'" json:"cartItems"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
