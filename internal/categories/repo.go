package categories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Namespace selects which of the two category tables an operation targets.
// Sub-categories and parent categories share rules but never share names.
type Namespace string

const (
	NamespaceSub    Namespace = "sub"
	NamespaceParent Namespace = "parent"
)

func (n Namespace) Valid() bool {
	return n == NamespaceSub || n == NamespaceParent
}

func (n Namespace) table() string {
	if n == NamespaceParent {
		return "parent_categories"
	}
	return "categories"
}

// Entry is a category record from either namespace.
type Entry struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey" json:"_id"`
	Name      string    `gorm:"column:name" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

// Repository persists category records for both namespaces.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a categories repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) table(ctx context.Context, ns Namespace) (*gorm.DB, error) {
	if !ns.Valid() {
		return nil, fmt.Errorf("unknown category namespace %q", ns)
	}
	return r.db.WithContext(ctx).Table(ns.table()), nil
}

// Insert creates a record with a fresh id and returns it.
func (r *Repository) Insert(ctx context.Context, ns Namespace, name string) (*Entry, error) {
	tx, err := r.table(ctx, ns)
	if err != nil {
		return nil, err
	}
	entry := &Entry{ID: uuid.New(), Name: name}
	if err := tx.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// FindByID loads a record by id.
func (r *Repository) FindByID(ctx context.Context, ns Namespace, id uuid.UUID) (*Entry, error) {
	tx, err := r.table(ctx, ns)
	if err != nil {
		return nil, err
	}
	var entry Entry
	if err := tx.Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ExistsByName reports whether the exact name is taken, optionally ignoring
// one record so a rename to its own name is allowed.
func (r *Repository) ExistsByName(ctx context.Context, ns Namespace, name string, excludeID *uuid.UUID) (bool, error) {
	tx, err := r.table(ctx, ns)
	if err != nil {
		return false, err
	}
	query := tx.Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateName renames a record and reports how many rows were touched.
func (r *Repository) UpdateName(ctx context.Context, ns Namespace, id uuid.UUID, name string) (int64, error) {
	tx, err := r.table(ctx, ns)
	if err != nil {
		return 0, err
	}
	res := tx.Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Delete removes a record and reports how many rows were touched.
func (r *Repository) Delete(ctx context.Context, ns Namespace, id uuid.UUID) (int64, error) {
	tx, err := r.table(ctx, ns)
	if err != nil {
		return 0, err
	}
	res := tx.Where("id = ?", id).Delete(&Entry{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// List returns all records in insertion order.
func (r *Repository) List(ctx context.Context, ns Namespace) ([]Entry, error) {
	tx, err := r.table(ctx, ns)
	if err != nil {
		return nil, err
	}
	entries := []Entry{}
	if err := tx.Order("created_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
