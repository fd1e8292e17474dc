package dberrors

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yigit/senatehub/internal/pkg/apperrors"
)

// PostgreSQL SQLSTATE codes surfaced by the schema. The two CA codes are
// raised by the validate_committee_assignment trigger, which re-validates
// capacity and division quotas at insert time and is the authoritative
// backstop for races between the in-process admission check and the write.
const (
	ForeignKeyViolation = "23503"
	UniqueViolation     = "23505"
	CheckViolation      = "23514"
	CommitteeFullState  = "CA001"
	QuotaReservedState  = "CA002"
)

// Translate converts a pgx/pgconn error into the application error taxonomy so
// that no vendor-specific code escapes the repository layer. Errors that are
// not recognized constraint violations are wrapped as transient store
// failures.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case ForeignKeyViolation:
			return apperrors.ErrUnknownReference
		case UniqueViolation:
			return apperrors.ErrDuplicateAssignment
		case CommitteeFullState:
			return apperrors.ErrCommitteeFull
		case QuotaReservedState:
			return apperrors.ErrDivisionQuotaReserved
		case CheckViolation:
			return apperrors.ErrInvalidDateRange
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.NewCustomError(apperrors.ErrTransientStore, "store request cancelled or timed out")
	}

	return apperrors.NewCustomError(apperrors.ErrTransientStore, err.Error())
}

// IsUniqueViolation checks if the error is a PostgreSQL unique violation,
// optionally for a specific constraint.
func IsUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != UniqueViolation {
		return false
	}
	return constraintName == "" || pgErr.ConstraintName == constraintName
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key
// violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == ForeignKeyViolation
}
