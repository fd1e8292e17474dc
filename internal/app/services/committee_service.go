package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/app/repositories"
	"github.com/yigit/senatehub/internal/pkg/apperrors"
)

// CommitteeService handles committee operations
type CommitteeService interface {
	Create(ctx context.Context, committee *models.Committee) (int64, error)
	Update(ctx context.Context, committee *models.Committee) error
	GetByID(ctx context.Context, id int64) (*models.Committee, error)
	GetAll(ctx context.Context) ([]*models.Committee, error)
	GetOccupancy(ctx context.Context, id int64) (models.CommitteeOccupancy, error)
}

type committeeService struct {
	committeeRepo *repositories.CommitteeRepository
	ledger        *repositories.SlotLedger
}

// NewCommitteeService creates a new committee service instance
func NewCommitteeService(committeeRepo *repositories.CommitteeRepository, ledger *repositories.SlotLedger) CommitteeService {
	return &committeeService{
		committeeRepo: committeeRepo,
		ledger:        ledger,
	}
}

func validateCommittee(committee *models.Committee) error {
	if strings.TrimSpace(committee.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if committee.TotalSlots < 0 {
		return fmt.Errorf("%w: total slots cannot be negative", apperrors.ErrValidationFailed)
	}

	return nil
}

// Create validates and inserts a new committee
func (s *committeeService) Create(ctx context.Context, committee *models.Committee) (int64, error) {
	if err := validateCommittee(committee); err != nil {
		return 0, err
	}

	return s.committeeRepo.Create(ctx, committee)
}

// Update validates and rewrites an existing committee
func (s *committeeService) Update(ctx context.Context, committee *models.Committee) error {
	if err := validateCommittee(committee); err != nil {
		return err
	}

	return s.committeeRepo.Update(ctx, committee)
}

// GetByID retrieves a committee by ID
func (s *committeeService) GetByID(ctx context.Context, id int64) (*models.Committee, error) {
	return s.committeeRepo.GetByID(ctx, id)
}

// GetAll retrieves all committees
func (s *committeeService) GetAll(ctx context.Context) ([]*models.Committee, error) {
	return s.committeeRepo.GetAll(ctx)
}

// GetOccupancy reports how many of the committee's seats are consumed
func (s *committeeService) GetOccupancy(ctx context.Context, id int64) (models.CommitteeOccupancy, error) {
	return s.ledger.GetOccupancy(ctx, id)
}
