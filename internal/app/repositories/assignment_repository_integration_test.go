package repositories

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/senatehub/internal/app/migrations"
	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/pkg/apperrors"
	"github.com/yigit/senatehub/internal/pkg/dberrors"
)

// integrationPool connects to the database named by TEST_DATABASE_URL and
// applies the migrations. Tests needing a live database skip when the
// variable is unset.
func integrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx))
	require.NoError(t, migrations.NewMigrator(pool).MigrateFromDirectory(ctx, "../../../migrations"))

	return pool
}

func seedCommittee(ctx context.Context, t *testing.T, pool *pgxpool.Pool, totalSlots int) int64 {
	t.Helper()

	err := NewSenateDivisionRepository(pool).Create(ctx, &models.SenateDivision{
		ShortName: "AO",
		Name:      "All Other Faculty",
	})
	require.NoError(t, err)

	id, err := NewCommitteeRepository(pool).Create(ctx, &models.Committee{
		Name:        "Budget Committee " + uuid.NewString()[:8],
		Description: "Reviews division budget proposals",
		TotalSlots:  totalSlots,
	})
	require.NoError(t, err)
	return id
}

func seedFacultyMember(ctx context.Context, t *testing.T, pool *pgxpool.Pool, division string) string {
	t.Helper()

	email := uuid.NewString() + "@university.edu"
	err := NewFacultyRepository(pool).Create(ctx, &models.Faculty{
		Email:          email,
		FullName:       "Test Member",
		JobTitle:       "Professor",
		SenateDivision: division,
	})
	require.NoError(t, err)
	return email
}

func termDates(t *testing.T) (time.Time, time.Time) {
	t.Helper()

	start, err := time.Parse(models.DateFormat, "2026-09-01")
	require.NoError(t, err)
	end, err := time.Parse(models.DateFormat, "2027-06-30")
	require.NoError(t, err)
	return start, end
}

// Concurrent creates racing for a single-seat committee must admit exactly
// one of them. The committee row lock serializes the occupancy read and the
// insert, so no interleaving can overfill the committee.
func TestConcurrentCreatesSingleSlotCommittee(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()

	committeeID := seedCommittee(ctx, t, pool, 1)

	const contenders = 8
	emails := make([]string, contenders)
	for i := range emails {
		emails[i] = seedFacultyMember(ctx, t, pool, "AO")
	}

	repo := NewAssignmentRepository(pool)
	start, end := termDates(t)

	results := make([]error, contenders)
	var wg sync.WaitGroup
	for i := range emails {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = repo.Create(ctx, &models.CommitteeAssignment{
				Email:       emails[i],
				CommitteeID: committeeID,
				StartDate:   start,
				EndDate:     end,
			})
		}(i)
	}
	wg.Wait()

	admitted := 0
	for _, err := range results {
		if err == nil {
			admitted++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrCommitteeFull)
	}
	assert.Equal(t, 1, admitted, "exactly one contender wins the only seat")

	var count int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM committee_assignment WHERE committee_id = $1`,
		committeeID,
	).Scan(&count))
	assert.Equal(t, 1, count)
}

// With one of two seats reserved for another division, concurrent contenders
// from outside that division may only claim the unreserved seat.
func TestConcurrentCreatesRespectDivisionReservation(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()

	committeeID := seedCommittee(ctx, t, pool, 2)

	err := NewSenateDivisionRepository(pool).Create(ctx, &models.SenateDivision{
		ShortName: "BUS",
		Name:      "School of Business",
	})
	require.NoError(t, err)
	err = NewSlotRequirementRepository(pool).Create(ctx, &models.SlotRequirement{
		CommitteeID:      committeeID,
		SenateDivision:   "BUS",
		SlotRequirements: 1,
	})
	require.NoError(t, err)

	const contenders = 4
	emails := make([]string, contenders)
	for i := range emails {
		emails[i] = seedFacultyMember(ctx, t, pool, "AO")
	}

	repo := NewAssignmentRepository(pool)
	start, end := termDates(t)

	results := make([]error, contenders)
	var wg sync.WaitGroup
	for i := range emails {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = repo.Create(ctx, &models.CommitteeAssignment{
				Email:       emails[i],
				CommitteeID: committeeID,
				StartDate:   start,
				EndDate:     end,
			})
		}(i)
	}
	wg.Wait()

	admitted := 0
	for _, err := range results {
		if err == nil {
			admitted++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrDivisionQuotaReserved)
	}
	assert.Equal(t, 1, admitted, "the reserved seat stays open for the other division")
}

// A raw insert bypassing the repository must still be refused by the
// database trigger, and its SQLSTATE must translate back to the capacity
// rejection.
func TestTriggerRefusesOverfullInsert(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()

	committeeID := seedCommittee(ctx, t, pool, 1)
	first := seedFacultyMember(ctx, t, pool, "AO")
	second := seedFacultyMember(ctx, t, pool, "AO")
	start, end := termDates(t)

	insert := `INSERT INTO committee_assignment (email, committee_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)`

	_, err := pool.Exec(ctx, insert, first, committeeID, start, end)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, insert, second, committeeID, start, end)
	require.Error(t, err)
	assert.ErrorIs(t, dberrors.Translate(err), apperrors.ErrCommitteeFull)
}
