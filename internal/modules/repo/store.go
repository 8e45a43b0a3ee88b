package repo

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/pkg/apperrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// Filter holds column = value conditions, ANDed together.
type Filter map[string]any

// Store is the set of operations every entity repository supports.
type Store[T any] interface {
	List(ctx context.Context, f Filter) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	// Exists reports whether a row matches f, ignoring the row with id exceptID (0 ignores nothing).
	Exists(ctx context.Context, f Filter, exceptID uint) (bool, error)
	Create(ctx context.Context, v *T) (*T, error)
	// Update writes every column of v and returns the row re-read with its associations.
	Update(ctx context.Context, v *T) (*T, error)
	Delete(ctx context.Context, id uint) error
}

var schemaCache sync.Map

type crud[T any] struct {
	db     *gorm.DB
	reg    *model.Registry
	schema *schema.Schema
	label  string
}

func newCrud[T any](db *gorm.DB, reg *model.Registry, label string) crud[T] {
	s, err := schema.Parse(new(T), &schemaCache, schema.NamingStrategy{})
	if err != nil {
		panic(fmt.Sprintf("parse schema for %s: %v", label, err))
	}
	return crud[T]{db: db, reg: reg, schema: s, label: label}
}

func (c crud[T]) table() string { return c.schema.Table }

func (c crud[T]) notFound() error {
	return apperrors.NotFound("NOT_FOUND", c.label+" not found")
}

// query starts a read with the registry's eager loads applied.
func (c crud[T]) query(ctx context.Context) *gorm.DB {
	q := c.db.WithContext(ctx)
	for _, p := range c.reg.Preloads(c.table()) {
		q = q.Preload(p)
	}
	return q
}

func (c crud[T]) id(v *T) uint {
	val, _ := c.schema.PrioritizedPrimaryField.ValueOf(context.Background(), reflect.ValueOf(v).Elem())
	id, _ := val.(uint)
	return id
}

func (c crud[T]) List(ctx context.Context, f Filter) ([]T, error) {
	q := c.query(ctx)
	if len(f) > 0 {
		q = q.Where(map[string]any(f))
	}
	out := make([]T, 0)
	if err := q.Order("id").Find(&out).Error; err != nil {
		return nil, translate(err, opRead)
	}
	return out, nil
}

func (c crud[T]) Get(ctx context.Context, id uint) (*T, error) {
	var v T
	if err := c.query(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.notFound()
		}
		return nil, translate(err, opRead)
	}
	return &v, nil
}

func (c crud[T]) Exists(ctx context.Context, f Filter, exceptID uint) (bool, error) {
	ok, err := exists(c.db.WithContext(ctx), new(T), f, exceptID)
	if err != nil {
		return false, translate(err, opRead)
	}
	return ok, nil
}

func (c crud[T]) Create(ctx context.Context, v *T) (*T, error) {
	if err := c.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error; err != nil {
		return nil, translate(err, opWrite)
	}
	return c.Get(ctx, c.id(v))
}

func (c crud[T]) Update(ctx context.Context, v *T) (*T, error) {
	id := c.id(v)
	res := c.db.WithContext(ctx).Model(v).Select("*").Omit(clause.Associations, "created_at").Updates(v)
	if res.Error != nil {
		return nil, translate(res.Error, opWrite)
	}
	if res.RowsAffected == 0 {
		return nil, c.notFound()
	}
	return c.Get(ctx, id)
}

// Delete removes the row. Rows that a RESTRICT relation still points at are refused;
// CASCADE and SET NULL dependents are left to the database.
func (c crud[T]) Delete(ctx context.Context, id uint) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return c.notFound()
		}

		for _, rel := range c.reg.Restricting(c.table()) {
			var refs int64
			if err := tx.Table(rel.Child).Where(rel.ForeignKey+" = ?", id).Count(&refs).Error; err != nil {
				return err
			}
			if refs > 0 {
				return apperrors.Conflict("RESTRICT_VIOLATION",
					fmt.Sprintf("%s %d is still referenced by %d row(s) in %s", c.label, id, refs, rel.Child))
			}
		}

		return tx.Delete(new(T), id).Error
	})
	return translate(err, opDelete)
}
