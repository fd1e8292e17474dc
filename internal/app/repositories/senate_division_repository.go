package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/pkg/dberrors"
)

// SenateDivisionRepository reads senate division reference data
type SenateDivisionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSenateDivisionRepository creates a new SenateDivisionRepository
func NewSenateDivisionRepository(db *pgxpool.Pool) *SenateDivisionRepository {
	return &SenateDivisionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a senate division. Used by seeding.
func (r *SenateDivisionRepository) Create(ctx context.Context, division *models.SenateDivision) error {
	sql, args, err := r.sb.Insert("senate_division").
		Columns("senate_division_short_name", "name").
		Values(division.ShortName, division.Name).
		Suffix("ON CONFLICT (senate_division_short_name) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create senate division query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return dberrors.Translate(err)
	}

	return nil
}

// GetAll retrieves all senate divisions
func (r *SenateDivisionRepository) GetAll(ctx context.Context) ([]*models.SenateDivision, error) {
	sql, args, err := r.sb.Select("senate_division_short_name", "name").
		From("senate_division").
		OrderBy("senate_division_short_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get senate divisions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberrors.Translate(err)
	}
	defer rows.Close()

	var divisions []*models.SenateDivision
	for rows.Next() {
		division := &models.SenateDivision{}
		if err := rows.Scan(&division.ShortName, &division.Name); err != nil {
			return nil, dberrors.Translate(err)
		}
		divisions = append(divisions, division)
	}

	if err := rows.Err(); err != nil {
		return nil, dberrors.Translate(err)
	}

	return divisions, nil
}

// GetByShortName retrieves one senate division by its short code
func (r *SenateDivisionRepository) GetByShortName(ctx context.Context, shortName string) (*models.SenateDivision, error) {
	sql, args, err := r.sb.Select("senate_division_short_name", "name").
		From("senate_division").
		Where(squirrel.Eq{"senate_division_short_name": shortName}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get senate division query: %w", err)
	}

	division := &models.SenateDivision{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&division.ShortName, &division.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, dberrors.Translate(err)
	}

	return division, nil
}
