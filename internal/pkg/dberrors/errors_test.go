package dberrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/senatehub/internal/pkg/apperrors"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: ForeignKeyViolation, ConstraintName: "committee_assignment_email_fkey"},
			want: apperrors.ErrUnknownReference,
		},
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: UniqueViolation, ConstraintName: "committee_assignment_pkey"},
			want: apperrors.ErrDuplicateAssignment,
		},
		{
			name: "trigger capacity state",
			err:  &pgconn.PgError{Code: CommitteeFullState},
			want: apperrors.ErrCommitteeFull,
		},
		{
			name: "trigger quota state",
			err:  &pgconn.PgError{Code: QuotaReservedState},
			want: apperrors.ErrDivisionQuotaReserved,
		},
		{
			name: "check violation",
			err:  &pgconn.PgError{Code: CheckViolation, ConstraintName: "committee_assignment_dates_check"},
			want: apperrors.ErrInvalidDateRange,
		},
		{
			name: "wrapped pg error",
			err:  fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: ForeignKeyViolation}),
			want: apperrors.ErrUnknownReference,
		},
		{
			name: "context deadline",
			err:  context.DeadlineExceeded,
			want: apperrors.ErrTransientStore,
		},
		{
			name: "unrecognized error",
			err:  errors.New("connection refused"),
			want: apperrors.ErrTransientStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.err)
			require.Error(t, got)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestTranslateNil(t *testing.T) {
	assert.NoError(t, Translate(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: UniqueViolation, ConstraintName: "survey_data_pkey"})

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "survey_data_pkey"))
	assert.False(t, IsUniqueViolation(err, "faculty_pkey"))
	assert.False(t, IsUniqueViolation(errors.New("plain"), ""))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: ForeignKeyViolation}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: UniqueViolation}))
	assert.False(t, IsForeignKeyViolation(errors.New("plain")))
}
