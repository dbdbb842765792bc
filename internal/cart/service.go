package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/quickcart/quickcart-backend/pkg/db/models"
	dbtypes "github.com/quickcart/quickcart-backend/pkg/db/types"
	pkgerrors "github.com/quickcart/quickcart-backend/pkg/errors"
)

type userStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	ReplaceCart(ctx context.Context, userID string, items dbtypes.CartItems) (int64, error)
}

type offerPricer interface {
	OfferPricesByIDs(ctx context.Context, ids []string) (map[string]decimal.Decimal, error)
}

// Snapshot is a cart read together with its derived totals.
type Snapshot struct {
	Items  dbtypes.CartItems `json:"cartItems"`
	Count  int               `json:"count"`
	Amount float64           `json:"amount"`
}

// Service exposes cart persistence operations.
type Service interface {
	Replace(ctx context.Context, userID string, items dbtypes.CartItems) error
	Get(ctx context.Context, userID string) (*Snapshot, error)
}

type service struct {
	users  userStore
	prices offerPricer
}

// NewService builds a cart service backed by the provided stack.
func NewService(users userStore, prices offerPricer) (Service, error) {
	if users == nil {
		return nil, fmt.Errorf("user store required")
	}
	if prices == nil {
		return nil, fmt.Errorf("offer pricer required")
	}
	return &service{users: users, prices: prices}, nil
}

// Replace overwrites the user's whole cart mapping in one write. The last
// caller wins; there is no merging between concurrent replacements.
func (s *service) Replace(ctx context.Context, userID string, items dbtypes.CartItems) error {
	if strings.TrimSpace(userID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if items == nil {
		items = dbtypes.CartItems{}
	}
	for id, qty := range items {
		if strings.TrimSpace(id) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
		}
		if qty <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("quantity for %s must be positive", id))
		}
	}

	affected, err := s.users.ReplaceCart(ctx, userID, items)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "replace cart")
	}
	if affected == 0 {
		if _, findErr := s.users.FindByID(ctx, userID); findErr != nil {
			if errors.Is(findErr, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "User Not Found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, findErr, "verify cart owner")
		}
		return pkgerrors.New(pkgerrors.CodePersistence, "cart write did not apply")
	}
	return nil
}

// Get loads the stored mapping and derives its totals.
func (s *service) Get(ctx context.Context, userID string) (*Snapshot, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "User Not Found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}

	items := user.CartItems.Normalize()

	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}

	prices := map[string]decimal.Decimal{}
	if len(ids) > 0 {
		prices, err = s.prices.OfferPricesByIDs(ctx, ids)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "price cart")
		}
	}

	return &Snapshot{
		Items:  items,
		Count:  Count(items),
		Amount: Amount(items, prices),
	}, nil
}
