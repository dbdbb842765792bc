package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CartItems maps a product id to a positive quantity. It is stored as a
// single JSONB column so a cart replacement is one atomic document write.
// A missing key means the product is not in the cart; zero or negative
// quantities are never stored.
type CartItems map[string]int

// Normalize returns a copy with non-positive quantities dropped.
func (c CartItems) Normalize() CartItems {
	out := make(CartItems, len(c))
	for id, qty := range c {
		if qty > 0 {
			out[id] = qty
		}
	}
	return out
}

func (c CartItems) Value() (driver.Value, error) {
	if c == nil {
		return "{}", nil
	}
	for id, qty := range c {
		if qty <= 0 {
			return nil, fmt.Errorf("cart items: non-positive quantity %d for %q", qty, id)
		}
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("cart items: marshal: %w", err)
	}
	return string(raw), nil
}

func (c *CartItems) Scan(src any) error {
	if src == nil {
		*c = CartItems{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cart items: unsupported Scan type %T", src)
	}

	if len(raw) == 0 {
		*c = CartItems{}
		return nil
	}

	decoded := CartItems{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("cart items: unmarshal: %w", err)
	}
	*c = decoded
	return nil
}

// GormDataType tells GORM which column type backs the map.
func (CartItems) GormDataType() string {
	return "jsonb"
}
