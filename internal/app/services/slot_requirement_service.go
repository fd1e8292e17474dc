package services

import (
	"context"
	"fmt"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/app/repositories"
	"github.com/yigit/senatehub/internal/pkg/apperrors"
)

// SlotRequirementService handles per-division seat reservation operations
type SlotRequirementService interface {
	Create(ctx context.Context, requirement *models.SlotRequirement) error
	Update(ctx context.Context, requirement *models.SlotRequirement) error
	Delete(ctx context.Context, committeeID int64, senateDivision string) error
	GetByCommittee(ctx context.Context, committeeID int64) ([]*models.SlotRequirement, error)
	GetBySenateDivision(ctx context.Context, senateDivision string) ([]*models.SlotRequirement, error)
}

type slotRequirementService struct {
	slotRequirementRepo *repositories.SlotRequirementRepository
}

// NewSlotRequirementService creates a new slot requirement service instance
func NewSlotRequirementService(slotRequirementRepo *repositories.SlotRequirementRepository) SlotRequirementService {
	return &slotRequirementService{
		slotRequirementRepo: slotRequirementRepo,
	}
}

func validateSlotRequirement(requirement *models.SlotRequirement) error {
	if requirement.SlotRequirements < 0 {
		return fmt.Errorf("%w: slot requirements cannot be negative", apperrors.ErrValidationFailed)
	}
	return nil
}

// Create validates and inserts a new reservation
func (s *slotRequirementService) Create(ctx context.Context, requirement *models.SlotRequirement) error {
	if err := validateSlotRequirement(requirement); err != nil {
		return err
	}

	return s.slotRequirementRepo.Create(ctx, requirement)
}

// Update validates and changes an existing reservation
func (s *slotRequirementService) Update(ctx context.Context, requirement *models.SlotRequirement) error {
	if err := validateSlotRequirement(requirement); err != nil {
		return err
	}

	return s.slotRequirementRepo.Update(ctx, requirement)
}

// Delete removes a reservation
func (s *slotRequirementService) Delete(ctx context.Context, committeeID int64, senateDivision string) error {
	return s.slotRequirementRepo.Delete(ctx, committeeID, senateDivision)
}

// GetByCommittee lists the reservations registered on a committee
func (s *slotRequirementService) GetByCommittee(ctx context.Context, committeeID int64) ([]*models.SlotRequirement, error) {
	return s.slotRequirementRepo.GetByCommittee(ctx, committeeID)
}

// GetBySenateDivision lists the reservations registered for a division
func (s *slotRequirementService) GetBySenateDivision(ctx context.Context, senateDivision string) ([]*models.SlotRequirement, error) {
	return s.slotRequirementRepo.GetBySenateDivision(ctx, senateDivision)
}
