package service

import (
	"context"
	"fmt"

	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/pkg/apperrors"
)

// CRUD is the service surface shared by every entity. I is the request payload:
// on create the required fields must be present, on update nil fields keep their value.
type CRUD[T any, I any] interface {
	List(ctx context.Context, f repo.Filter) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, in I) (*T, error)
	Update(ctx context.Context, id uint, in I) (*T, error)
	Delete(ctx context.Context, id uint) error
}

type input[T any] interface {
	validate(create bool) error
	apply(v *T) error
}

type entityService[T any, I input[T]] struct {
	r repo.Store[T]
	// init sets defaults on a new row before the input is applied.
	init func(v *T)
	// check runs the lookups a write depends on. cur is nil on create.
	check func(ctx context.Context, next, cur *T) error
}

func newEntityService[T any, I input[T]](r repo.Store[T]) *entityService[T, I] {
	return &entityService[T, I]{r: r}
}

func (s *entityService[T, I]) List(ctx context.Context, f repo.Filter) ([]T, error) {
	return s.r.List(ctx, f)
}

func (s *entityService[T, I]) Get(ctx context.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, invalidID()
	}
	return s.r.Get(ctx, id)
}

func (s *entityService[T, I]) Create(ctx context.Context, in I) (*T, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}
	var v T
	if s.init != nil {
		s.init(&v)
	}
	if err := in.apply(&v); err != nil {
		return nil, err
	}
	if s.check != nil {
		if err := s.check(ctx, &v, nil); err != nil {
			return nil, err
		}
	}
	return s.r.Create(ctx, &v)
}

func (s *entityService[T, I]) Update(ctx context.Context, id uint, in I) (*T, error) {
	if id == 0 {
		return nil, invalidID()
	}
	if err := in.validate(false); err != nil {
		return nil, err
	}
	cur, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next := *cur
	if err := in.apply(&next); err != nil {
		return nil, err
	}
	if s.check != nil {
		if err := s.check(ctx, &next, cur); err != nil {
			return nil, err
		}
	}
	return s.r.Update(ctx, &next)
}

func (s *entityService[T, I]) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return invalidID()
	}
	return s.r.Delete(ctx, id)
}

type existsChecker interface {
	Exists(ctx context.Context, f repo.Filter, exceptID uint) (bool, error)
}

// mustExist fails with a validation error when the referenced row is missing.
func mustExist(ctx context.Context, r existsChecker, id uint, what string) error {
	ok, err := r.Exists(ctx, repo.Filter{"id": id}, 0)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.Validation("REFERENCE_NOT_FOUND", fmt.Sprintf("%s %d does not exist", what, id))
	}
	return nil
}

// mustBeUnique fails with a conflict when another row already matches f.
func mustBeUnique(ctx context.Context, r existsChecker, f repo.Filter, exceptID uint, msg string) error {
	taken, err := r.Exists(ctx, f, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.Conflict("DUPLICATE", msg)
	}
	return nil
}

func invalidID() error {
	return apperrors.Validation("INVALID_ID", "id must be a positive integer")
}

func missing(field string) error {
	return apperrors.Validation("VALIDATION_ERROR", field+" is required")
}

// text checks a required string: absent on create, or sent as "" on either write.
func text(create bool, field string, v *string) error {
	switch {
	case create && blank(v):
		return missing(field)
	case v != nil && *v == "":
		return apperrors.Validation("VALIDATION_ERROR", field+" must not be empty")
	}
	return nil
}

type textField struct {
	name string
	v    *string
}

// texts runs text over fields in order and returns the first failure.
func texts(create bool, fields ...textField) error {
	for _, f := range fields {
		if err := text(create, f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}

func blank(s *string) bool {
	return s == nil || *s == ""
}

// differs reports whether two optional values differ.
func differs[V comparable](a, b *V) bool {
	if a == nil || b == nil {
		return a != b
	}
	return *a != *b
}

func set[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

func setPtr[V any](dst **V, src *V) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
