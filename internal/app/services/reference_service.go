package services

import (
	"context"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/app/repositories"
)

// SenateDivisionService reads senate division reference data
type SenateDivisionService interface {
	GetAll(ctx context.Context) ([]*models.SenateDivision, error)
	GetByShortName(ctx context.Context, shortName string) (*models.SenateDivision, error)
}

type senateDivisionService struct {
	senateDivisionRepo *repositories.SenateDivisionRepository
}

// NewSenateDivisionService creates a new senate division service instance
func NewSenateDivisionService(senateDivisionRepo *repositories.SenateDivisionRepository) SenateDivisionService {
	return &senateDivisionService{
		senateDivisionRepo: senateDivisionRepo,
	}
}

func (s *senateDivisionService) GetAll(ctx context.Context) ([]*models.SenateDivision, error) {
	return s.senateDivisionRepo.GetAll(ctx)
}

func (s *senateDivisionService) GetByShortName(ctx context.Context, shortName string) (*models.SenateDivision, error) {
	return s.senateDivisionRepo.GetByShortName(ctx, shortName)
}

// DepartmentService reads department records
type DepartmentService interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
}

type departmentService struct {
	departmentRepo *repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository) DepartmentService {
	return &departmentService{
		departmentRepo: departmentRepo,
	}
}

func (s *departmentService) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}
