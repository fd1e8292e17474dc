package services

import (
	"context"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/app/repositories"
	"github.com/yigit/senatehub/internal/pkg/logger"
)

// AssociationService handles faculty-department membership operations
type AssociationService interface {
	Create(ctx context.Context, association *models.DepartmentAssociation) error
	Update(ctx context.Context, email string, oldDepartmentID, newDepartmentID int64) error
	GetByFaculty(ctx context.Context, email string) (*models.FacultyDepartments, error)
	GetByDepartment(ctx context.Context, departmentID int64) (*models.DepartmentFaculty, error)
}

type associationService struct {
	associationRepo *repositories.AssociationRepository
}

// NewAssociationService creates a new association service instance
func NewAssociationService(associationRepo *repositories.AssociationRepository) AssociationService {
	return &associationService{
		associationRepo: associationRepo,
	}
}

// Create links a faculty member to a department
func (s *associationService) Create(ctx context.Context, association *models.DepartmentAssociation) error {
	if err := s.associationRepo.Create(ctx, association); err != nil {
		return err
	}

	logger.Info().
		Str("email", association.Email).
		Int64("departmentID", association.DepartmentID).
		Msg("Department association created")
	return nil
}

// Update moves an existing association to a different department
func (s *associationService) Update(ctx context.Context, email string, oldDepartmentID, newDepartmentID int64) error {
	return s.associationRepo.Update(ctx, email, oldDepartmentID, newDepartmentID)
}

// GetByFaculty lists a member's department memberships
func (s *associationService) GetByFaculty(ctx context.Context, email string) (*models.FacultyDepartments, error) {
	return s.associationRepo.GetByFaculty(ctx, email)
}

// GetByDepartment lists the members associated with a department
func (s *associationService) GetByDepartment(ctx context.Context, departmentID int64) (*models.DepartmentFaculty, error) {
	return s.associationRepo.GetByDepartment(ctx, departmentID)
}
