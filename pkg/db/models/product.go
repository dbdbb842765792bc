package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product is a seller listing. Category references the sub-category
// namespace by name; images are plain URL references.
type Product struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	UserID      string         `gorm:"column:user_id;type:text;not null;index" json:"userId"`
	Name        string         `gorm:"column:name;not null" json:"name"`
	Description string         `gorm:"column:description;not null" json:"description"`
	Category    string         `gorm:"column:category;not null;index" json:"category"`
	Price       float64        `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	OfferPrice  float64        `gorm:"column:offer_price;type:numeric(10,2);not null" json:"offerPrice"`
	Image       pq.StringArray `gorm:"column:image;type:text[];not null;default:ARRAY[]::text[]" json:"image"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
