package categories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgdb "github.com/quickcart/quickcart-backend/pkg/db"
	pkgerrors "github.com/quickcart/quickcart-backend/pkg/errors"
)

type categoryStore interface {
	Insert(ctx context.Context, ns Namespace, name string) (*Entry, error)
	FindByID(ctx context.Context, ns Namespace, id uuid.UUID) (*Entry, error)
	ExistsByName(ctx context.Context, ns Namespace, name string, excludeID *uuid.UUID) (bool, error)
	UpdateName(ctx context.Context, ns Namespace, id uuid.UUID, name string) (int64, error)
	Delete(ctx context.Context, ns Namespace, id uuid.UUID) (int64, error)
	List(ctx context.Context, ns Namespace) ([]Entry, error)
}

type referenceCounter interface {
	CountByCategory(ctx context.Context, name string) (int64, error)
}

// Service exposes category CRUD over both namespaces.
type Service interface {
	Create(ctx context.Context, ns Namespace, name string) (*Entry, error)
	List(ctx context.Context, ns Namespace) ([]Entry, error)
	Rename(ctx context.Context, ns Namespace, id uuid.UUID, name string) (*Entry, error)
	Remove(ctx context.Context, ns Namespace, id uuid.UUID) error
}

type service struct {
	repo     categoryStore
	products referenceCounter
}

// NewService builds a categories service. The reference counter guards
// deletes in the sub-category namespace against dangling product references.
func NewService(repo categoryStore, products referenceCounter) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("categories repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product reference counter required")
	}
	return &service{repo: repo, products: products}, nil
}

func (s *service) Create(ctx context.Context, ns Namespace, name string) (*Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Category name is required")
	}

	taken, err := s.repo.ExistsByName(ctx, ns, name, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check category name")
	}
	if taken {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "Category already exists")
	}

	entry, err := s.repo.Insert(ctx, ns, name)
	if err != nil {
		// A concurrent insert can slip past the pre-check.
		if pkgdb.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Category already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create category")
	}
	return entry, nil
}

func (s *service) List(ctx context.Context, ns Namespace) ([]Entry, error) {
	entries, err := s.repo.List(ctx, ns)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}
	return entries, nil
}

func (s *service) Rename(ctx context.Context, ns Namespace, id uuid.UUID, name string) (*Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Category name is required")
	}

	entry, err := s.repo.FindByID(ctx, ns, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Category Not Found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load category")
	}

	taken, err := s.repo.ExistsByName(ctx, ns, name, &id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check category name")
	}
	if taken {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "Category already exists")
	}

	affected, err := s.repo.UpdateName(ctx, ns, id, name)
	if err != nil {
		if pkgdb.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Category already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rename category")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodePersistence, "category rename did not apply")
	}

	entry.Name = name
	return entry, nil
}

func (s *service) Remove(ctx context.Context, ns Namespace, id uuid.UUID) error {
	entry, err := s.repo.FindByID(ctx, ns, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Category Not Found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load category")
	}

	if ns == NamespaceSub {
		refs, err := s.products.CountByCategory(ctx, entry.Name)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count category references")
		}
		if refs > 0 {
			return pkgerrors.New(pkgerrors.CodeInUse, "Category is referenced by products")
		}
	}

	affected, err := s.repo.Delete(ctx, ns, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete category")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodePersistence, "category delete did not apply")
	}
	return nil
}
