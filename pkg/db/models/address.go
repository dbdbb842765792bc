package models

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address collected from the storefront.
type Address struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	UserID      string    `gorm:"column:user_id;type:text;not null;index" json:"userId"`
	FullName    string    `gorm:"column:full_name;not null" json:"fullName"`
	PhoneNumber string    `gorm:"column:phone_number;not null" json:"phoneNumber"`
	Pincode     string    `gorm:"column:pincode;not null" json:"pincode"`
	Area        string    `gorm:"column:area;not null" json:"area"`
	City        string    `gorm:"column:city;not null" json:"city"`
	State       string    `gorm:"column:state;not null" json:"state"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
