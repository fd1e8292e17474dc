package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/pkg/dberrors"
)

// SlotLedger answers how many seats a committee has left and under which
// division constraints. It is constructed over a Querier so the same reads
// can run against the pool or inside the admission transaction.
type SlotLedger struct {
	q  Querier
	sb squirrel.StatementBuilderType
}

// NewSlotLedger creates a ledger over the given querier
func NewSlotLedger(q Querier) *SlotLedger {
	return &SlotLedger{
		q:  q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetOccupancy returns the committee's capacity and the count of assignment
// rows currently consuming it. Returns ErrNotFound when the committee does
// not exist.
func (l *SlotLedger) GetOccupancy(ctx context.Context, committeeID int64) (models.CommitteeOccupancy, error) {
	var occupancy models.CommitteeOccupancy

	query := `
		SELECT c.total_slots,
		       (SELECT COUNT(*) FROM committee_assignment ca WHERE ca.committee_id = c.committee_id)
		FROM committee c
		WHERE c.committee_id = $1
	`

	err := l.q.QueryRow(ctx, query, committeeID).Scan(&occupancy.TotalSlots, &occupancy.ConsumedSlots)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return occupancy, ErrNotFound
		}
		return occupancy, dberrors.Translate(err)
	}

	return occupancy, nil
}

// LockOccupancy is GetOccupancy with the committee row locked FOR UPDATE.
// Concurrent creates for the same committee serialize on this lock, so the
// occupancy read and the subsequent insert behave as one atomic unit.
func (l *SlotLedger) LockOccupancy(ctx context.Context, committeeID int64) (models.CommitteeOccupancy, error) {
	var occupancy models.CommitteeOccupancy

	if err := l.q.QueryRow(ctx,
		`SELECT total_slots FROM committee WHERE committee_id = $1 FOR UPDATE`,
		committeeID,
	).Scan(&occupancy.TotalSlots); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return occupancy, ErrNotFound
		}
		return occupancy, dberrors.Translate(err)
	}

	if err := l.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM committee_assignment WHERE committee_id = $1`,
		committeeID,
	).Scan(&occupancy.ConsumedSlots); err != nil {
		return occupancy, dberrors.Translate(err)
	}

	return occupancy, nil
}

// GetDivisionRequirements returns the minimum reserved seats per senate
// division on a committee. An empty map means no reservations: open
// competition for every seat.
func (l *SlotLedger) GetDivisionRequirements(ctx context.Context, committeeID int64) (map[string]int, error) {
	sql, args, err := l.sb.Select("senate_division_short_name", "slot_requirements").
		From("committee_slots").
		Where(squirrel.Eq{"committee_id": committeeID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build division requirements query: %w", err)
	}

	rows, err := l.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberrors.Translate(err)
	}
	defer rows.Close()

	requirements := make(map[string]int)
	for rows.Next() {
		var division string
		var minSeats int
		if err := rows.Scan(&division, &minSeats); err != nil {
			return nil, dberrors.Translate(err)
		}
		requirements[division] = minSeats
	}

	if err := rows.Err(); err != nil {
		return nil, dberrors.Translate(err)
	}

	return requirements, nil
}

// GetDivisionConsumption returns, per senate division, how many of the
// committee's seats are held by members of that division.
func (l *SlotLedger) GetDivisionConsumption(ctx context.Context, committeeID int64) (map[string]int, error) {
	query := `
		SELECT f.senate_division_short_name, COUNT(*)
		FROM committee_assignment ca
		JOIN faculty f ON f.email = ca.email
		WHERE ca.committee_id = $1
		GROUP BY f.senate_division_short_name
	`

	rows, err := l.q.Query(ctx, query, committeeID)
	if err != nil {
		return nil, dberrors.Translate(err)
	}
	defer rows.Close()

	consumption := make(map[string]int)
	for rows.Next() {
		var division string
		var count int
		if err := rows.Scan(&division, &count); err != nil {
			return nil, dberrors.Translate(err)
		}
		consumption[division] = count
	}

	if err := rows.Err(); err != nil {
		return nil, dberrors.Translate(err)
	}

	return consumption, nil
}
