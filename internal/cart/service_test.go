package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/quickcart/quickcart-backend/pkg/db/models"
	dbtypes "github.com/quickcart/quickcart-backend/pkg/db/types"
	pkgerrors "github.com/quickcart/quickcart-backend/pkg/errors"
)

type stubUserStore struct {
	user       *models.User
	findErr    error
	replaced   dbtypes.CartItems
	replacedN  int64
	replaceErr error
}

func (s *stubUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.user, nil
}

func (s *stubUserStore) ReplaceCart(ctx context.Context, userID string, items dbtypes.CartItems) (int64, error) {
	s.replaced = items
	return s.replacedN, s.replaceErr
}

type stubPricer struct {
	prices map[string]decimal.Decimal
	err    error
}

func (s *stubPricer) OfferPricesByIDs(ctx context.Context, ids []string) (map[string]decimal.Decimal, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.prices, nil
}

func newTestService(t *testing.T, users *stubUserStore, prices *stubPricer) Service {
	t.Helper()
	svc, err := NewService(users, prices)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestReplaceRejectsNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubUserStore{replacedN: 1}, &stubPricer{})

	err := svc.Replace(context.Background(), "user_2abc", dbtypes.CartItems{"p1": 0})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReplaceAllowsEmptyCart(t *testing.T) {
	t.Parallel()

	store := &stubUserStore{replacedN: 1}
	svc := newTestService(t, store, &stubPricer{})

	if err := svc.Replace(context.Background(), "user_2abc", dbtypes.CartItems{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.replaced == nil || len(store.replaced) != 0 {
		t.Fatalf("expected empty mapping written, got %v", store.replaced)
	}
}

func TestReplaceMissingUser(t *testing.T) {
	t.Parallel()

	store := &stubUserStore{replacedN: 0, findErr: gorm.ErrRecordNotFound}
	svc := newTestService(t, store, &stubPricer{})

	err := svc.Replace(context.Background(), "user_missing", dbtypes.CartItems{"p1": 1})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReplaceUnappliedWrite(t *testing.T) {
	t.Parallel()

	store := &stubUserStore{replacedN: 0, user: &models.User{ID: "user_2abc"}}
	svc := newTestService(t, store, &stubPricer{})

	err := svc.Replace(context.Background(), "user_2abc", dbtypes.CartItems{"p1": 1})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodePersistence {
		t.Fatalf("expected persistence error, got %v", err)
	}
}

func TestReplaceLastWriteWins(t *testing.T) {
	t.Parallel()

	store := &stubUserStore{replacedN: 1}
	svc := newTestService(t, store, &stubPricer{})

	if err := svc.Replace(context.Background(), "user_2abc", dbtypes.CartItems{"p1": 2, "p2": 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Replace(context.Background(), "user_2abc", dbtypes.CartItems{"p3": 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.replaced) != 1 || store.replaced["p3"] != 1 {
		t.Fatalf("expected full replacement, got %v", store.replaced)
	}
}

func TestGetDerivesTotals(t *testing.T) {
	t.Parallel()

	store := &stubUserStore{user: &models.User{
		ID:        "user_2abc",
		CartItems: dbtypes.CartItems{"p1": 2, "p2": 1, "ghost": 3},
	}}
	pricer := &stubPricer{prices: map[string]decimal.Decimal{
		"p1": decimal.RequireFromString("19.999"),
		"p2": decimal.RequireFromString("5.00"),
	}}
	svc := newTestService(t, store, pricer)

	snap, err := svc.Get(context.Background(), "user_2abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Count != 6 {
		t.Fatalf("expected count 6, got %d", snap.Count)
	}
	// 2*19.999 + 5.00 = 44.998 truncated, ghost contributes nothing
	if snap.Amount != 44.99 {
		t.Fatalf("expected amount 44.99, got %v", snap.Amount)
	}
}

func TestGetMissingUser(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubUserStore{findErr: gorm.ErrRecordNotFound}, &stubPricer{})

	_, err := svc.Get(context.Background(), "user_missing")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAmountTruncatesDown(t *testing.T) {
	t.Parallel()

	items := dbtypes.CartItems{"p1": 2}
	prices := map[string]decimal.Decimal{"p1": decimal.RequireFromString("19.999")}

	if got := Amount(items, prices); got != 39.99 {
		t.Fatalf("expected 39.99, got %v", got)
	}
}

func TestCountIgnoresNonPositive(t *testing.T) {
	t.Parallel()

	items := dbtypes.CartItems{"p1": 2, "p2": 0, "p3": -4}
	if got := Count(items); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}
