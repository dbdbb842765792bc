package address

import (
	"context"
	"fmt"
	"strings"

	"github.com/quickcart/quickcart-backend/pkg/db/models"
	pkgerrors "github.com/quickcart/quickcart-backend/pkg/errors"
)

const (
	minPhoneDigits   = 10
	minPincodeDigits = 5
)

type addressStore interface {
	Create(ctx context.Context, address *models.Address) error
	ListByUser(ctx context.Context, userID string) ([]models.Address, error)
}

// CreateAddressDTO carries the delivery address fields from the checkout
// form.
type CreateAddressDTO struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Pincode     string `json:"pincode"`
	Area        string `json:"area"`
	City        string `json:"city"`
	State       string `json:"state"`
}

// Service validates and persists delivery addresses.
type Service interface {
	Add(ctx context.Context, userID string, dto CreateAddressDTO) (*models.Address, error)
	ListByUser(ctx context.Context, userID string) ([]models.Address, error)
}

type service struct {
	repo addressStore
}

// NewService builds an address service backed by the provided repo.
func NewService(repo addressStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("address repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Add(ctx context.Context, userID string, dto CreateAddressDTO) (*models.Address, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := validate(dto); err != nil {
		return nil, err
	}

	addr := &models.Address{
		UserID:      userID,
		FullName:    strings.TrimSpace(dto.FullName),
		PhoneNumber: strings.TrimSpace(dto.PhoneNumber),
		Pincode:     strings.TrimSpace(dto.Pincode),
		Area:        strings.TrimSpace(dto.Area),
		City:        strings.TrimSpace(dto.City),
		State:       strings.TrimSpace(dto.State),
	}
	if err := s.repo.Create(ctx, addr); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save address")
	}
	return addr, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]models.Address, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list addresses")
	}
	return rows, nil
}

// validate checks fields in form order and reports only the first failure,
// mirroring how the storefront surfaces one toast at a time.
func validate(dto CreateAddressDTO) error {
	if strings.TrimSpace(dto.FullName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "Full name is required")
	}

	phone := strings.TrimSpace(dto.PhoneNumber)
	if !digitsOnly(phone) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Phone number must contain only digits")
	}
	if len(phone) < minPhoneDigits {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("Phone number must have at least %d digits", minPhoneDigits))
	}

	pincode := strings.TrimSpace(dto.Pincode)
	if !digitsOnly(pincode) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Pincode must contain only digits")
	}
	if len(pincode) < minPincodeDigits {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("Pincode must have at least %d digits", minPincodeDigits))
	}

	if strings.TrimSpace(dto.Area) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "Area is required")
	}
	if strings.TrimSpace(dto.City) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "City is required")
	}
	if strings.TrimSpace(dto.State) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "State is required")
	}
	return nil
}

func digitsOnly(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
