package categories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/quickcart/quickcart-backend/pkg/errors"
)

type stubCategoryStore struct {
	entries    map[uuid.UUID]*Entry
	taken      bool
	existsErr  error
	inserted   *Entry
	insertErr  error
	renamed    string
	renamedN   int64
	deletedN   int64
	listResult []Entry
}

func (s *stubCategoryStore) Insert(ctx context.Context, ns Namespace, name string) (*Entry, error) {
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	s.inserted = &Entry{ID: uuid.New(), Name: name}
	return s.inserted, nil
}

func (s *stubCategoryStore) FindByID(ctx context.Context, ns Namespace, id uuid.UUID) (*Entry, error) {
	if entry, ok := s.entries[id]; ok {
		return entry, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCategoryStore) ExistsByName(ctx context.Context, ns Namespace, name string, excludeID *uuid.UUID) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	if excludeID != nil {
		if entry, ok := s.entries[*excludeID]; ok && entry.Name == name {
			return false, nil
		}
	}
	return s.taken, nil
}

func (s *stubCategoryStore) UpdateName(ctx context.Context, ns Namespace, id uuid.UUID, name string) (int64, error) {
	s.renamed = name
	return s.renamedN, nil
}

func (s *stubCategoryStore) Delete(ctx context.Context, ns Namespace, id uuid.UUID) (int64, error) {
	return s.deletedN, nil
}

func (s *stubCategoryStore) List(ctx context.Context, ns Namespace) ([]Entry, error) {
	return s.listResult, nil
}

type stubRefCounter struct {
	count int64
	err   error
}

func (s *stubRefCounter) CountByCategory(ctx context.Context, name string) (int64, error) {
	return s.count, s.err
}

func newTestService(t *testing.T, store *stubCategoryStore, refs *stubRefCounter) Service {
	t.Helper()
	if store.entries == nil {
		store.entries = map[uuid.UUID]*Entry{}
	}
	svc, err := NewService(store, refs)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCreateTrimsName(t *testing.T) {
	t.Parallel()

	store := &stubCategoryStore{}
	svc := newTestService(t, store, &stubRefCounter{})

	entry, err := svc.Create(context.Background(), NamespaceSub, "  Electronics  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Name != "Electronics" {
		t.Fatalf("expected trimmed name, got %q", entry.Name)
	}
}

func TestCreateRejectsBlankName(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubCategoryStore{}, &stubRefCounter{})

	_, err := svc.Create(context.Background(), NamespaceSub, "   ")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateDuplicateName(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubCategoryStore{taken: true}, &stubRefCounter{})

	_, err := svc.Create(context.Background(), NamespaceSub, "Electronics")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRenameUnknownID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubCategoryStore{}, &stubRefCounter{})

	_, err := svc.Rename(context.Background(), NamespaceSub, uuid.New(), "Electronics")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRenameToOwnNameSucceeds(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	store := &stubCategoryStore{
		entries:  map[uuid.UUID]*Entry{id: {ID: id, Name: "Electronics"}},
		taken:    true,
		renamedN: 1,
	}
	svc := newTestService(t, store, &stubRefCounter{})

	entry, err := svc.Rename(context.Background(), NamespaceSub, id, "Electronics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Name != "Electronics" {
		t.Fatalf("unexpected name %q", entry.Name)
	}
}

func TestRenameDuplicateName(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	store := &stubCategoryStore{
		entries: map[uuid.UUID]*Entry{id: {ID: id, Name: "Electronics"}},
		taken:   true,
	}
	svc := newTestService(t, store, &stubRefCounter{})

	_, err := svc.Rename(context.Background(), NamespaceSub, id, "Clothing")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRemoveUnknownID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubCategoryStore{}, &stubRefCounter{})

	err := svc.Remove(context.Background(), NamespaceSub, uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRemoveReferencedCategory(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	store := &stubCategoryStore{
		entries: map[uuid.UUID]*Entry{id: {ID: id, Name: "Electronics"}},
	}
	svc := newTestService(t, store, &stubRefCounter{count: 3})

	err := svc.Remove(context.Background(), NamespaceSub, id)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInUse {
		t.Fatalf("expected in-use error, got %v", err)
	}
}

func TestRemoveUnreferencedCategory(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	store := &stubCategoryStore{
		entries:  map[uuid.UUID]*Entry{id: {ID: id, Name: "Electronics"}},
		deletedN: 1,
	}
	svc := newTestService(t, store, &stubRefCounter{count: 0})

	if err := svc.Remove(context.Background(), NamespaceSub, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParentNamespaceSkipsReferenceCheck(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	store := &stubCategoryStore{
		entries:  map[uuid.UUID]*Entry{id: {ID: id, Name: "Essentials"}},
		deletedN: 1,
	}
	// a non-zero count must not block parent-namespace deletes
	svc := newTestService(t, store, &stubRefCounter{count: 5})

	if err := svc.Remove(context.Background(), NamespaceParent, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
