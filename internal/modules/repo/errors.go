package repo

import (
	"errors"
	"fmt"

	"github.com/ds611b/practicas/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes that map to caller errors.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

type op int

const (
	opRead op = iota
	opWrite
	opDelete
)

// translate converts a database error into the apperrors taxonomy.
// A broken foreign key is the caller's fault on write (the referenced row is missing)
// and a conflict on delete (the row is still referenced).
func translate(err error, o op) error {
	if err == nil {
		return nil
	}
	var ae *apperrors.Error
	if errors.As(err, &ae) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("NOT_FOUND", "record not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return uniqueViolation(pgErr.ConstraintName).WithCause(err)
		case pgForeignKeyViolation:
			return foreignKeyViolation(o, pgErr.ConstraintName).WithCause(err)
		case pgCheckViolation, pgNotNullViolation:
			return apperrors.Validation("VALIDATION_ERROR", pgErr.Message).WithCause(err)
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return uniqueViolation("").WithCause(err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return foreignKeyViolation(o, "").WithCause(err)
	}

	return apperrors.Internal("DATABASE_ERROR", "database error", err)
}

func uniqueViolation(constraint string) *apperrors.Error {
	msg := "a record with the same unique value already exists"
	if constraint != "" {
		msg = fmt.Sprintf("%s (%s)", msg, constraint)
	}
	return apperrors.Conflict("UNIQUE_VIOLATION", msg)
}

func foreignKeyViolation(o op, constraint string) *apperrors.Error {
	if o == opDelete {
		msg := "record is still referenced by other records"
		if constraint != "" {
			msg = fmt.Sprintf("%s (%s)", msg, constraint)
		}
		return apperrors.Conflict("FOREIGN_KEY_VIOLATION", msg)
	}
	msg := "referenced record does not exist"
	if constraint != "" {
		msg = fmt.Sprintf("%s (%s)", msg, constraint)
	}
	return apperrors.Validation("FOREIGN_KEY_VIOLATION", msg)
}
