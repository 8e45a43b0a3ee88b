package repo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ds611b/practicas/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_usuarios_email", Message: "duplicate key"}
	fk := &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_usuarios_role", Message: "violates foreign key"}
	check := &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "chk_perfiles_usuario_genero", Message: "violates check constraint"}
	notNull := &pgconn.PgError{Code: pgNotNullViolation, Message: "null value in column"}
	known := apperrors.Conflict("RESTRICT_VIOLATION", "still referenced")

	tests := []struct {
		name     string
		err      error
		op       op
		kind     error
		code     string
		contains string
	}{
		{name: "record not found", err: gorm.ErrRecordNotFound, op: opRead, kind: apperrors.ErrNotFound, code: "NOT_FOUND"},
		{name: "unique violation", err: unique, op: opWrite, kind: apperrors.ErrConflict, code: "UNIQUE_VIOLATION", contains: "uq_usuarios_email"},
		{name: "wrapped unique violation", err: fmt.Errorf("create: %w", unique), op: opWrite, kind: apperrors.ErrConflict, code: "UNIQUE_VIOLATION"},
		{name: "fk on write", err: fk, op: opWrite, kind: apperrors.ErrValidation, code: "FOREIGN_KEY_VIOLATION", contains: "does not exist"},
		{name: "fk on delete", err: fk, op: opDelete, kind: apperrors.ErrConflict, code: "FOREIGN_KEY_VIOLATION", contains: "still referenced"},
		{name: "check violation", err: check, op: opWrite, kind: apperrors.ErrValidation, code: "VALIDATION_ERROR"},
		{name: "not null violation", err: notNull, op: opWrite, kind: apperrors.ErrValidation, code: "VALIDATION_ERROR"},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, op: opWrite, kind: apperrors.ErrConflict, code: "UNIQUE_VIOLATION"},
		{name: "gorm fk violated on delete", err: gorm.ErrForeignKeyViolated, op: opDelete, kind: apperrors.ErrConflict, code: "FOREIGN_KEY_VIOLATION"},
		{name: "already translated", err: known, op: opDelete, kind: apperrors.ErrConflict, code: "RESTRICT_VIOLATION"},
		{name: "anything else", err: errors.New("connection reset"), op: opRead, kind: apperrors.ErrInternal, code: "DATABASE_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.err, tt.op)
			assert.ErrorIs(t, got, tt.kind)

			ae := apperrors.As(got)
			assert.Equal(t, tt.code, ae.Code)
			if tt.contains != "" {
				assert.Contains(t, ae.Message, tt.contains)
			}
		})
	}

	assert.NoError(t, translate(nil, opRead))
}
