package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/pkg/apperrors"
	"github.com/yigit/senatehub/internal/pkg/dberrors"
	"github.com/yigit/senatehub/internal/pkg/logger"
)

// SlotRequirementRepository handles per-division seat reservation rows
type SlotRequirementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSlotRequirementRepository creates a new SlotRequirementRepository
func NewSlotRequirementRepository(db *pgxpool.Pool) *SlotRequirementRepository {
	return &SlotRequirementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a slot requirement for a (committee, division) pair
func (r *SlotRequirementRepository) Create(ctx context.Context, requirement *models.SlotRequirement) error {
	sql, args, err := r.sb.Insert("committee_slots").
		Columns("committee_id", "senate_division_short_name", "slot_requirements").
		Values(requirement.CommitteeID, requirement.SenateDivision, requirement.SlotRequirements).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create slot requirement query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err, "") {
			return apperrors.NewConflictError("slot requirement for this committee and senate division already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUnknownReference
		}
		logger.Error().Err(err).
			Int64("committeeID", requirement.CommitteeID).
			Str("senateDivision", requirement.SenateDivision).
			Msg("Error creating slot requirement")
		return dberrors.Translate(err)
	}

	return nil
}

// Update changes the reserved seat count for a (committee, division) pair
func (r *SlotRequirementRepository) Update(ctx context.Context, requirement *models.SlotRequirement) error {
	sql, args, err := r.sb.Update("committee_slots").
		Set("slot_requirements", requirement.SlotRequirements).
		Where(squirrel.Eq{
			"committee_id":               requirement.CommitteeID,
			"senate_division_short_name": requirement.SenateDivision,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update slot requirement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).
			Int64("committeeID", requirement.CommitteeID).
			Str("senateDivision", requirement.SenateDivision).
			Msg("Error updating slot requirement")
		return dberrors.Translate(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a (committee, division) reservation
func (r *SlotRequirementRepository) Delete(ctx context.Context, committeeID int64, senateDivision string) error {
	sql, args, err := r.sb.Delete("committee_slots").
		Where(squirrel.Eq{
			"committee_id":               committeeID,
			"senate_division_short_name": senateDivision,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete slot requirement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return dberrors.Translate(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// GetByCommittee retrieves all slot requirements registered on a committee
func (r *SlotRequirementRepository) GetByCommittee(ctx context.Context, committeeID int64) ([]*models.SlotRequirement, error) {
	sql, args, err := r.sb.Select("committee_id", "senate_division_short_name", "slot_requirements").
		From("committee_slots").
		Where(squirrel.Eq{"committee_id": committeeID}).
		OrderBy("senate_division_short_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get slot requirements query: %w", err)
	}

	return r.queryRequirements(ctx, sql, args)
}

// GetBySenateDivision retrieves all slot requirements registered for a division
func (r *SlotRequirementRepository) GetBySenateDivision(ctx context.Context, senateDivision string) ([]*models.SlotRequirement, error) {
	sql, args, err := r.sb.Select("committee_id", "senate_division_short_name", "slot_requirements").
		From("committee_slots").
		Where(squirrel.Eq{"senate_division_short_name": senateDivision}).
		OrderBy("committee_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get slot requirements query: %w", err)
	}

	return r.queryRequirements(ctx, sql, args)
}

func (r *SlotRequirementRepository) queryRequirements(ctx context.Context, sql string, args []interface{}) ([]*models.SlotRequirement, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberrors.Translate(err)
	}
	defer rows.Close()

	var requirements []*models.SlotRequirement
	for rows.Next() {
		requirement := &models.SlotRequirement{}
		if err := rows.Scan(&requirement.CommitteeID, &requirement.SenateDivision, &requirement.SlotRequirements); err != nil {
			return nil, dberrors.Translate(err)
		}
		requirements = append(requirements, requirement)
	}

	if err := rows.Err(); err != nil {
		return nil, dberrors.Translate(err)
	}

	return requirements, nil
}
