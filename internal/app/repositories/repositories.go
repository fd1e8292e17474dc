package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/senatehub/internal/pkg/apperrors"
)

// ErrNotFound is the shared not-found sentinel returned by repositories.
var ErrNotFound = apperrors.ErrResourceNotFound

// Querier is the subset of pgx operations repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so ledger reads can run inside the
// assignment transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	CommitteeRepository       *CommitteeRepository
	FacultyRepository         *FacultyRepository
	SenateDivisionRepository  *SenateDivisionRepository
	SlotRequirementRepository *SlotRequirementRepository
	AssignmentRepository      *AssignmentRepository
	DepartmentRepository      *DepartmentRepository
	AssociationRepository     *AssociationRepository
	SurveyRepository          *SurveyRepository
	SlotLedger                *SlotLedger
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CommitteeRepository:       NewCommitteeRepository(db),
		FacultyRepository:         NewFacultyRepository(db),
		SenateDivisionRepository:  NewSenateDivisionRepository(db),
		SlotRequirementRepository: NewSlotRequirementRepository(db),
		AssignmentRepository:      NewAssignmentRepository(db),
		DepartmentRepository:      NewDepartmentRepository(db),
		AssociationRepository:     NewAssociationRepository(db),
		SurveyRepository:          NewSurveyRepository(db),
		SlotLedger:                NewSlotLedger(db),
	}
}
