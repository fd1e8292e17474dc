package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/senatehub/internal/app/admission"
	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/db"
	"github.com/yigit/senatehub/internal/pkg/apperrors"
	"github.com/yigit/senatehub/internal/pkg/dberrors"
	"github.com/yigit/senatehub/internal/pkg/logger"
)

// AssignmentRepository handles committee assignment rows. Creates run the
// admission check and the insert inside one transaction so the decision and
// the write are consistent under concurrent requests; the database trigger
// re-validates capacity and quotas as the backstop.
type AssignmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create admits and inserts a new assignment. Returns one of the admission
// rejection sentinels when the candidate is refused.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.CommitteeAssignment) error {
	// Fast-fail on the date rule before paying for a transaction.
	if !assignment.DatesValid() {
		return apperrors.ErrInvalidDateRange
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		ledger := NewSlotLedger(tx)

		// Locks the committee row; concurrent creates for the same committee
		// serialize here.
		occupancy, err := ledger.LockOccupancy(ctx, assignment.CommitteeID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return apperrors.ErrUnknownReference
			}
			return err
		}

		exists, err := r.exists(ctx, tx, assignment.Email, assignment.CommitteeID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrDuplicateAssignment
		}

		division, err := r.facultyDivision(ctx, tx, assignment.Email)
		if err != nil {
			return err
		}

		requirements, err := ledger.GetDivisionRequirements(ctx, assignment.CommitteeID)
		if err != nil {
			return err
		}

		consumption, err := ledger.GetDivisionConsumption(ctx, assignment.CommitteeID)
		if err != nil {
			return err
		}

		if err := admission.Check(assignment, admission.Snapshot{
			Occupancy:         occupancy,
			Requirements:      requirements,
			Consumption:       consumption,
			CandidateDivision: division,
		}); err != nil {
			logger.Info().Err(err).
				Str("email", assignment.Email).
				Int64("committeeID", assignment.CommitteeID).
				Msg("Assignment rejected")
			return err
		}

		sql, args, err := r.sb.Insert("committee_assignment").
			Columns("email", "committee_id", "start_date", "end_date").
			Values(assignment.Email, assignment.CommitteeID, assignment.StartDate, assignment.EndDate).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create assignment query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			// The trigger may still refuse; its SQLSTATE translates back to
			// the matching rejection reason.
			return dberrors.Translate(err)
		}

		return nil
	})
}

// Update changes the date range of an existing assignment. Capacity and quota
// are not re-checked: the row already occupies its seat.
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.CommitteeAssignment) error {
	if err := admission.CheckUpdate(assignment); err != nil {
		return err
	}

	sql, args, err := r.sb.Update("committee_assignment").
		Set("start_date", assignment.StartDate).
		Set("end_date", assignment.EndDate).
		Where(squirrel.Eq{
			"email":        assignment.Email,
			"committee_id": assignment.CommitteeID,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update assignment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).
			Str("email", assignment.Email).
			Int64("committeeID", assignment.CommitteeID).
			Msg("Error updating assignment")
		return dberrors.Translate(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete frees the assignment's seat. Repeated deletes after the first report
// ErrNotFound.
func (r *AssignmentRepository) Delete(ctx context.Context, committeeID int64, email string) error {
	sql, args, err := r.sb.Delete("committee_assignment").
		Where(squirrel.Eq{
			"committee_id": committeeID,
			"email":        email,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete assignment query: %w", err)
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

// ListByCommittee retrieves all assignments for a committee
func (r *AssignmentRepository) ListByCommittee(ctx context.Context, committeeID int64) ([]*models.CommitteeAssignment, error) {
	sql, args, err := r.sb.Select("email", "committee_id", "start_date", "end_date").
		From("committee_assignment").
		Where(squirrel.Eq{"committee_id": committeeID}).
		OrderBy("email ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list by committee query: %w", err)
	}

	return r.queryAssignments(ctx, sql, args)
}

// ListByFaculty retrieves all assignments held by a faculty member
func (r *AssignmentRepository) ListByFaculty(ctx context.Context, email string) ([]*models.CommitteeAssignment, error) {
	sql, args, err := r.sb.Select("email", "committee_id", "start_date", "end_date").
		From("committee_assignment").
		Where(squirrel.Eq{"email": email}).
		OrderBy("committee_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list by faculty query: %w", err)
	}

	return r.queryAssignments(ctx, sql, args)
}

func (r *AssignmentRepository) queryAssignments(ctx context.Context, sql string, args []interface{}) ([]*models.CommitteeAssignment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberrors.Translate(err)
	}
	defer rows.Close()

	var assignments []*models.CommitteeAssignment
	for rows.Next() {
		assignment := &models.CommitteeAssignment{}
		if err := rows.Scan(
			&assignment.Email,
			&assignment.CommitteeID,
			&assignment.StartDate,
			&assignment.EndDate,
		); err != nil {
			return nil, dberrors.Translate(err)
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, dberrors.Translate(err)
	}

	return assignments, nil
}

// exists checks for an assignment with the given composite key
func (r *AssignmentRepository) exists(ctx context.Context, q Querier, email string, committeeID int64) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM committee_assignment WHERE email = $1 AND committee_id = $2)`,
		email, committeeID,
	).Scan(&exists)
	if err != nil {
		return false, dberrors.Translate(err)
	}
	return exists, nil
}

// facultyDivision resolves the candidate's senate division, surfacing a
// missing faculty row as an unknown reference.
func (r *AssignmentRepository) facultyDivision(ctx context.Context, q Querier, email string) (string, error) {
	var division string
	err := q.QueryRow(ctx,
		`SELECT senate_division_short_name FROM faculty WHERE email = $1`,
		email,
	).Scan(&division)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrUnknownReference
		}
		return "", dberrors.Translate(err)
	}
	return division, nil
}
