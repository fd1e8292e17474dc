// Package admission decides whether a candidate committee assignment may be
// created. The decision is evaluated against a snapshot of the slot ledger
// and returns a typed rejection reason; it performs no reads or writes of its
// own, so the caller controls the transaction the snapshot was taken in.
package admission

import (
	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/pkg/apperrors"
)

// Snapshot carries the ledger state a decision is evaluated against. All of
// it must come from one transaction for the decision to be trustworthy under
// concurrent writers.
type Snapshot struct {
	// Occupancy is the committee's capacity and consumed seat count.
	Occupancy models.CommitteeOccupancy
	// Requirements maps senate division code to that division's minimum
	// reserved seats on the committee. Empty means open competition.
	Requirements map[string]int
	// Consumption maps senate division code to the number of seats its
	// members currently hold on the committee.
	Consumption map[string]int
	// CandidateDivision is the senate division of the member being assigned.
	CandidateDivision string
}

// Check runs the ordered admission procedure for a create. The first failing
// rule wins:
//
//  1. start date must not follow end date
//  2. total capacity is a hard ceiling
//  3. the remaining free seats must not all be spoken for by other divisions'
//     unmet minimums, unless the candidate's own division still has an unmet
//     minimum (that seat counts toward it)
//
// Duplicate and referential checks happen in the repository, where the rows
// live; by the time Check runs both references are known to exist.
func Check(candidate *models.CommitteeAssignment, snap Snapshot) error {
	if !candidate.DatesValid() {
		return apperrors.ErrInvalidDateRange
	}

	if snap.Occupancy.ConsumedSlots >= snap.Occupancy.TotalSlots {
		return apperrors.ErrCommitteeFull
	}

	if len(snap.Requirements) == 0 {
		return nil
	}

	// A candidate whose own division is still short of its minimum always
	// fits: the seat reduces that division's deficit one for one.
	if min, ok := snap.Requirements[snap.CandidateDivision]; ok {
		if snap.Consumption[snap.CandidateDivision] < min {
			return nil
		}
	}

	if snap.Occupancy.FreeSlots() <= unmetReservations(snap) {
		return apperrors.ErrDivisionQuotaReserved
	}

	return nil
}

// CheckUpdate validates a date-range change on an existing assignment.
// Capacity and quota are not re-evaluated: the row already holds its seat.
func CheckUpdate(candidate *models.CommitteeAssignment) error {
	if !candidate.DatesValid() {
		return apperrors.ErrInvalidDateRange
	}
	return nil
}

// unmetReservations sums the reserved-but-unfilled seats of every division
// other than the candidate's.
func unmetReservations(snap Snapshot) int {
	total := 0
	for division, min := range snap.Requirements {
		if division == snap.CandidateDivision {
			continue
		}
		if held := snap.Consumption[division]; held < min {
			total += min - held
		}
	}
	return total
}
