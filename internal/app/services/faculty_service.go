package services

import (
	"context"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/app/repositories"
	"github.com/yigit/senatehub/internal/pkg/logger"
)

// FacultyService handles faculty member operations
type FacultyService interface {
	Create(ctx context.Context, faculty *models.Faculty) error
	Update(ctx context.Context, faculty *models.Faculty) error
	GetByEmail(ctx context.Context, email string) (*models.Faculty, error)
	GetAll(ctx context.Context) ([]*models.Faculty, error)
}

type facultyService struct {
	facultyRepo *repositories.FacultyRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo *repositories.FacultyRepository) FacultyService {
	return &facultyService{
		facultyRepo: facultyRepo,
	}
}

// Create inserts a new faculty member
func (s *facultyService) Create(ctx context.Context, faculty *models.Faculty) error {
	if err := s.facultyRepo.Create(ctx, faculty); err != nil {
		return err
	}

	logger.Info().Str("email", faculty.Email).Msg("Faculty member created")
	return nil
}

// Update rewrites an existing faculty member
func (s *facultyService) Update(ctx context.Context, faculty *models.Faculty) error {
	if err := s.facultyRepo.Update(ctx, faculty); err != nil {
		return err
	}

	logger.Info().Str("email", faculty.Email).Msg("Faculty member updated")
	return nil
}

// GetByEmail retrieves a faculty member by email
func (s *facultyService) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	return s.facultyRepo.GetByEmail(ctx, email)
}

// GetAll retrieves all faculty members
func (s *facultyService) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	return s.facultyRepo.GetAll(ctx)
}
