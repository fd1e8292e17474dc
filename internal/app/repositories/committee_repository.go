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
	"github.com/yigit/senatehub/internal/pkg/logger"
)

// CommitteeRepository handles committee database operations
type CommitteeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommitteeRepository creates a new CommitteeRepository
func NewCommitteeRepository(db *pgxpool.Pool) *CommitteeRepository {
	return &CommitteeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new committee and returns its generated ID
func (r *CommitteeRepository) Create(ctx context.Context, committee *models.Committee) (int64, error) {
	sql, args, err := r.sb.Insert("committee").
		Columns("name", "description", "total_slots").
		Values(committee.Name, committee.Description, committee.TotalSlots).
		Suffix("RETURNING committee_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create committee query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create committee query")
		return 0, dberrors.Translate(err)
	}

	committee.ID = id
	return id, nil
}

// Update rewrites a committee row in place
func (r *CommitteeRepository) Update(ctx context.Context, committee *models.Committee) error {
	sql, args, err := r.sb.Update("committee").
		Set("name", committee.Name).
		Set("description", committee.Description).
		Set("total_slots", committee.TotalSlots).
		Where(squirrel.Eq{"committee_id": committee.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update committee query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("committeeID", committee.ID).Msg("Error updating committee")
		return dberrors.Translate(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// GetByID retrieves a committee by ID
func (r *CommitteeRepository) GetByID(ctx context.Context, id int64) (*models.Committee, error) {
	sql, args, err := r.sb.Select("committee_id", "name", "description", "total_slots").
		From("committee").
		Where(squirrel.Eq{"committee_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get committee query: %w", err)
	}

	committee := &models.Committee{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&committee.ID,
		&committee.Name,
		&committee.Description,
		&committee.TotalSlots,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("committeeID", id).Msg("Error scanning committee row")
		return nil, dberrors.Translate(err)
	}

	return committee, nil
}

// GetAll retrieves all committees ordered by name
func (r *CommitteeRepository) GetAll(ctx context.Context) ([]*models.Committee, error) {
	sql, args, err := r.sb.Select("committee_id", "name", "description", "total_slots").
		From("committee").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all committees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberrors.Translate(err)
	}
	defer rows.Close()

	var committees []*models.Committee
	for rows.Next() {
		committee := &models.Committee{}
		if err := rows.Scan(&committee.ID, &committee.Name, &committee.Description, &committee.TotalSlots); err != nil {
			return nil, dberrors.Translate(err)
		}
		committees = append(committees, committee)
	}

	if err := rows.Err(); err != nil {
		return nil, dberrors.Translate(err)
	}

	return committees, nil
}
