package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/senatehub/internal/app/models/dto"
	"github.com/yigit/senatehub/internal/app/services"
	"github.com/yigit/senatehub/internal/middleware"
)

// SenateDivisionController serves senate division reference data
type SenateDivisionController struct {
	senateDivisionService services.SenateDivisionService
}

// NewSenateDivisionController creates a new SenateDivisionController
func NewSenateDivisionController(senateDivisionService services.SenateDivisionService) *SenateDivisionController {
	return &SenateDivisionController{
		senateDivisionService: senateDivisionService,
	}
}

// GetAllSenateDivisions lists all senate divisions
// @Summary List senate divisions
// @Tags senate-divisions
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.SenateDivision}
// @Router /senate-divisions [get]
func (c *SenateDivisionController) GetAllSenateDivisions(ctx *gin.Context) {
	divisions, err := c.senateDivisionService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(divisions))
}

// GetSenateDivision retrieves one senate division
// @Summary Get senate division by short name
// @Tags senate-divisions
// @Produce json
// @Param shortname path string true "Senate division short name"
// @Success 200 {object} dto.APIResponse{data=models.SenateDivision}
// @Failure 404 {object} dto.ErrorResponse "Senate division not found"
// @Router /senate-division/{shortname} [get]
func (c *SenateDivisionController) GetSenateDivision(ctx *gin.Context) {
	division, err := c.senateDivisionService.GetByShortName(ctx, ctx.Param("shortname"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(division))
}

// DepartmentController serves department records
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// GetAllDepartments lists all departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Department}
// @Router /departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(departments))
}

// GetDepartmentByID retrieves a department by ID
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /department/{id} [get]
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Department ID must be a valid number")))
		return
	}

	department, err := c.departmentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(department))
}
