package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/pkg/apperrors"
	"github.com/yigit/senatehub/internal/pkg/dberrors"
	"github.com/yigit/senatehub/internal/pkg/logger"
)

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new faculty member
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := r.sb.Insert("faculty").
		Columns("full_name", "email", "job_title", "phone_num", "senate_division_short_name").
		Values(faculty.FullName, faculty.Email, faculty.JobTitle, faculty.PhoneNum, faculty.SenateDivision).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create faculty query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err, "") {
			return apperrors.NewConflictError("faculty member with this email already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUnknownReference
		}
		logger.Error().Err(err).Str("email", faculty.Email).Msg("Error creating faculty member")
		return dberrors.Translate(err)
	}

	return nil
}

// Update rewrites a faculty row identified by email
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := r.sb.Update("faculty").
		Set("full_name", faculty.FullName).
		Set("job_title", faculty.JobTitle).
		Set("phone_num", faculty.PhoneNum).
		Set("senate_division_short_name", faculty.SenateDivision).
		Where(squirrel.Eq{"email": faculty.Email}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUnknownReference
		}
		logger.Error().Err(err).Str("email", faculty.Email).Msg("Error updating faculty member")
		return dberrors.Translate(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// GetByEmail retrieves a faculty member by email
func (r *FacultyRepository) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	sql, args, err := r.sb.Select("email", "full_name", "job_title", "phone_num", "senate_division_short_name").
		From("faculty").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty := &models.Faculty{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&faculty.Email,
		&faculty.FullName,
		&faculty.JobTitle,
		&faculty.PhoneNum,
		&faculty.SenateDivision,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning faculty row")
		return nil, dberrors.Translate(err)
	}

	return faculty, nil
}

// GetAll retrieves all faculty members ordered by name
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	sql, args, err := r.sb.Select("email", "full_name", "job_title", "phone_num", "senate_division_short_name").
		From("faculty").
		OrderBy("full_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberrors.Translate(err)
	}
	defer rows.Close()

	var members []*models.Faculty
	for rows.Next() {
		faculty := &models.Faculty{}
		if err := rows.Scan(
			&faculty.Email,
			&faculty.FullName,
			&faculty.JobTitle,
			&faculty.PhoneNum,
			&faculty.SenateDivision,
		); err != nil {
			return nil, dberrors.Translate(err)
		}
		members = append(members, faculty)
	}

	if err := rows.Err(); err != nil {
		return nil, dberrors.Translate(err)
	}

	return members, nil
}
