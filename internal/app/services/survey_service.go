package services

import (
	"context"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/app/repositories"
	"github.com/yigit/senatehub/internal/pkg/logger"
)

// SurveyService handles committee-interest survey operations
type SurveyService interface {
	Create(ctx context.Context, response *models.SurveyResponse) error
	Update(ctx context.Context, response *models.SurveyResponse) error
	GetByYearAndEmail(ctx context.Context, year int, email string) (*models.SurveyResponse, error)
}

type surveyService struct {
	surveyRepo *repositories.SurveyRepository
}

// NewSurveyService creates a new survey service instance
func NewSurveyService(surveyRepo *repositories.SurveyRepository) SurveyService {
	return &surveyService{
		surveyRepo: surveyRepo,
	}
}

// Create inserts a new survey response
func (s *surveyService) Create(ctx context.Context, response *models.SurveyResponse) error {
	if err := s.surveyRepo.Create(ctx, response); err != nil {
		return err
	}

	logger.Info().Str("email", response.Email).Msg("Survey response created")
	return nil
}

// Update rewrites an existing survey response
func (s *surveyService) Update(ctx context.Context, response *models.SurveyResponse) error {
	return s.surveyRepo.Update(ctx, response)
}

// GetByYearAndEmail retrieves a member's survey response for one year
func (s *surveyService) GetByYearAndEmail(ctx context.Context, year int, email string) (*models.SurveyResponse, error) {
	return s.surveyRepo.GetByYearAndEmail(ctx, year, email)
}
