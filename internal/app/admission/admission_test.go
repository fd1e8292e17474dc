package admission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/pkg/apperrors"
)

func candidate(division string) (*models.CommitteeAssignment, string) {
	a := &models.CommitteeAssignment{
		Email:       "wolsborn@pdx.edu",
		CommitteeID: 1,
		StartDate:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	return a, division
}

func TestCheckDateRange(t *testing.T) {
	a, division := candidate("AO")
	a.StartDate = time.Date(2051, 1, 1, 0, 0, 0, 0, time.UTC)
	a.EndDate = time.Date(2050, 1, 1, 0, 0, 0, 0, time.UTC)

	snap := Snapshot{
		Occupancy:         models.CommitteeOccupancy{TotalSlots: 10},
		CandidateDivision: division,
	}

	// Date validity precedes everything, even a full committee
	assert.ErrorIs(t, Check(a, snap), apperrors.ErrInvalidDateRange)

	snap.Occupancy.ConsumedSlots = 10
	assert.ErrorIs(t, Check(a, snap), apperrors.ErrInvalidDateRange)
}

func TestCheckEqualDatesAdmitted(t *testing.T) {
	a, division := candidate("AO")
	a.EndDate = a.StartDate

	snap := Snapshot{
		Occupancy:         models.CommitteeOccupancy{TotalSlots: 1},
		CandidateDivision: division,
	}

	assert.NoError(t, Check(a, snap))
}

func TestCheckCapacity(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		consumed int
		wantErr  error
	}{
		{name: "last slot free", total: 1, consumed: 0, wantErr: nil},
		{name: "exactly full", total: 1, consumed: 1, wantErr: apperrors.ErrCommitteeFull},
		{name: "overfull", total: 2, consumed: 3, wantErr: apperrors.ErrCommitteeFull},
		{name: "zero slots", total: 0, consumed: 0, wantErr: apperrors.ErrCommitteeFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, division := candidate("AO")
			snap := Snapshot{
				Occupancy:         models.CommitteeOccupancy{TotalSlots: tt.total, ConsumedSlots: tt.consumed},
				CandidateDivision: division,
			}
			if tt.wantErr == nil {
				assert.NoError(t, Check(a, snap))
			} else {
				assert.ErrorIs(t, Check(a, snap), tt.wantErr)
			}
		})
	}
}

func TestCheckCapacityBeatsQuota(t *testing.T) {
	// Even when the candidate's division has an unmet reservation, total
	// physical slots is a hard ceiling.
	a, division := candidate("AO")
	snap := Snapshot{
		Occupancy:         models.CommitteeOccupancy{TotalSlots: 2, ConsumedSlots: 2},
		Requirements:      map[string]int{"AO": 1},
		Consumption:       map[string]int{"BQ": 2},
		CandidateDivision: division,
	}

	assert.ErrorIs(t, Check(a, snap), apperrors.ErrCommitteeFull)
}

func TestCheckDivisionQuota(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		consumed     int
		requirements map[string]int
		consumption  map[string]int
		division     string
		wantErr      error
	}{
		{
			name:     "no requirements means open competition",
			total:    2,
			consumed: 1,
			division: "AO",
		},
		{
			name:         "candidate division requirement unmet",
			total:        2,
			consumed:     1,
			requirements: map[string]int{"AO": 1},
			consumption:  map[string]int{"BQ": 1},
			division:     "AO",
		},
		{
			name:         "other division requirements already met",
			total:        3,
			consumed:     2,
			requirements: map[string]int{"BQ": 1},
			consumption:  map[string]int{"BQ": 1, "AO": 1},
			division:     "AO",
		},
		{
			name:         "other division unmet but spare seats remain",
			total:        3,
			consumed:     1,
			requirements: map[string]int{"BQ": 1},
			consumption:  map[string]int{"AO": 1},
			division:     "AO",
		},
		{
			name:         "last free seat reserved for another division",
			total:        2,
			consumed:     1,
			requirements: map[string]int{"BQ": 1},
			consumption:  map[string]int{"AO": 1},
			division:     "AO",
			wantErr:      apperrors.ErrDivisionQuotaReserved,
		},
		{
			name:         "candidate division quota met and remainder reserved",
			total:        3,
			consumed:     2,
			requirements: map[string]int{"AO": 1, "BQ": 1},
			consumption:  map[string]int{"AO": 1, "CX": 1},
			division:     "AO",
			wantErr:      apperrors.ErrDivisionQuotaReserved,
		},
		{
			name:         "two unmet divisions consume both remaining seats",
			total:        4,
			consumed:     2,
			requirements: map[string]int{"BQ": 1, "CX": 1},
			consumption:  map[string]int{"AO": 2},
			division:     "AO",
			wantErr:      apperrors.ErrDivisionQuotaReserved,
		},
		{
			name:         "two unmet divisions but three seats remain",
			total:        5,
			consumed:     2,
			requirements: map[string]int{"BQ": 1, "CX": 1},
			consumption:  map[string]int{"AO": 2},
			division:     "AO",
		},
		{
			name:         "partially filled reservation counts only the deficit",
			total:        4,
			consumed:     2,
			requirements: map[string]int{"BQ": 3},
			consumption:  map[string]int{"BQ": 2},
			division:     "AO",
		},
		{
			name:         "deficit of a partially filled reservation claims the free seats",
			total:        4,
			consumed:     3,
			requirements: map[string]int{"BQ": 3},
			consumption:  map[string]int{"BQ": 2, "AO": 1},
			division:     "AO",
			wantErr:      apperrors.ErrDivisionQuotaReserved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := candidate(tt.division)
			snap := Snapshot{
				Occupancy:         models.CommitteeOccupancy{TotalSlots: tt.total, ConsumedSlots: tt.consumed},
				Requirements:      tt.requirements,
				Consumption:       tt.consumption,
				CandidateDivision: tt.division,
			}
			err := Check(a, snap)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckUpdate(t *testing.T) {
	a, _ := candidate("AO")
	assert.NoError(t, CheckUpdate(a))

	a.StartDate, a.EndDate = a.EndDate, a.StartDate
	assert.ErrorIs(t, CheckUpdate(a), apperrors.ErrInvalidDateRange)
}
