package services

import (
	"context"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/app/repositories"
	"github.com/yigit/senatehub/internal/pkg/apperrors"
	"github.com/yigit/senatehub/internal/pkg/logger"
)

// AssignmentService orchestrates committee assignment operations
type AssignmentService interface {
	Create(ctx context.Context, assignment *models.CommitteeAssignment) error
	Update(ctx context.Context, assignment *models.CommitteeAssignment) error
	Delete(ctx context.Context, committeeID int64, email string) error
	ListByCommittee(ctx context.Context, committeeID int64) ([]*models.CommitteeAssignment, error)
	ListByFaculty(ctx context.Context, email string) ([]*models.CommitteeAssignment, error)
}

type assignmentService struct {
	assignmentRepo *repositories.AssignmentRepository
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(assignmentRepo *repositories.AssignmentRepository) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
	}
}

// Create runs admission and inserts the assignment on success
func (s *assignmentService) Create(ctx context.Context, assignment *models.CommitteeAssignment) error {
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		if !apperrors.IsAdmissionRejection(err) {
			logger.Error().Err(err).
				Str("email", assignment.Email).
				Int64("committeeID", assignment.CommitteeID).
				Msg("Error creating assignment")
		}
		return err
	}

	logger.Info().
		Str("email", assignment.Email).
		Int64("committeeID", assignment.CommitteeID).
		Msg("Committee assignment created")
	return nil
}

// Update changes an assignment's date range
func (s *assignmentService) Update(ctx context.Context, assignment *models.CommitteeAssignment) error {
	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return err
	}

	logger.Info().
		Str("email", assignment.Email).
		Int64("committeeID", assignment.CommitteeID).
		Msg("Committee assignment updated")
	return nil
}

// Delete frees the assignment's seat
func (s *assignmentService) Delete(ctx context.Context, committeeID int64, email string) error {
	if err := s.assignmentRepo.Delete(ctx, committeeID, email); err != nil {
		return err
	}

	logger.Info().
		Str("email", email).
		Int64("committeeID", committeeID).
		Msg("Committee assignment deleted")
	return nil
}

// ListByCommittee retrieves all assignments on a committee
func (s *assignmentService) ListByCommittee(ctx context.Context, committeeID int64) ([]*models.CommitteeAssignment, error) {
	return s.assignmentRepo.ListByCommittee(ctx, committeeID)
}

// ListByFaculty retrieves all assignments held by a faculty member
func (s *assignmentService) ListByFaculty(ctx context.Context, email string) ([]*models.CommitteeAssignment, error) {
	return s.assignmentRepo.ListByFaculty(ctx, email)
}
