package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/quickcart/quickcart-backend/pkg/db/models"
	pkgerrors "github.com/quickcart/quickcart-backend/pkg/errors"
)

type userStore interface {
	UpsertFromSync(ctx context.Context, dto SyncUserDTO) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// Service handles identity-provider account lifecycle events and profile
// reads.
type Service interface {
	Sync(ctx context.Context, dto SyncUserDTO) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Remove(ctx context.Context, id string) error
}

type service struct {
	repo userStore
}

// NewService builds a users service backed by the provided repo.
func NewService(repo userStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Sync(ctx context.Context, dto SyncUserDTO) (*models.User, error) {
	if strings.TrimSpace(dto.ID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if strings.TrimSpace(dto.Email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	user, err := s.repo.UpsertFromSync(ctx, dto)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "sync user")
	}
	return user, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*models.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "User Not Found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	return user, nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete user")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "User Not Found")
	}
	return nil
}
