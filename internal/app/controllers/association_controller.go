package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/app/models/dto"
	"github.com/yigit/senatehub/internal/app/services"
	"github.com/yigit/senatehub/internal/middleware"
)

// AssociationController handles faculty-department membership endpoints
type AssociationController struct {
	associationService services.AssociationService
	baseURL            string
}

// NewAssociationController creates a new AssociationController
func NewAssociationController(associationService services.AssociationService, baseURL string) *AssociationController {
	return &AssociationController{
		associationService: associationService,
		baseURL:            baseURL,
	}
}

// CreateAssociation links a faculty member to a department
// @Summary Create a department association
// @Tags department-associations
// @Accept json
// @Produce json
// @Param request body dto.DepartmentAssociationRequest true "Association"
// @Success 201 {object} dto.APIResponse
// @Failure 409 {object} dto.ErrorResponse "Already exists or unknown faculty/department"
// @Router /department-associations [post]
func (c *AssociationController) CreateAssociation(ctx *gin.Context) {
	var req dto.DepartmentAssociationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid association data").WithDetails(middleware.FormatBindingError(err))))
		return
	}

	association := &models.DepartmentAssociation{
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
	}

	if err := c.associationService.Create(ctx, association); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("%s/api/department-associations/faculty/%s", c.baseURL, association.Email))
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Department association created"))
}

// UpdateAssociation moves a membership to a different department
// @Summary Update a department association
// @Tags department-associations
// @Accept json
// @Produce json
// @Param request body dto.DepartmentAssociationUpdateRequest true "Association change"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Association not found"
// @Router /department-associations [put]
func (c *AssociationController) UpdateAssociation(ctx *gin.Context) {
	var req dto.DepartmentAssociationUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid association data").WithDetails(middleware.FormatBindingError(err))))
		return
	}

	if err := c.associationService.Update(ctx, req.Email, req.OldDepartmentID, req.NewDepartmentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Department association updated"))
}

// GetAssociationsByFaculty lists a member's department memberships
// @Summary Get associations for a faculty member
// @Tags department-associations
// @Produce json
// @Param email path string true "Faculty email"
// @Success 200 {object} dto.APIResponse{data=models.FacultyDepartments}
// @Failure 404 {object} dto.ErrorResponse "No associations found"
// @Router /department-associations/faculty/{email} [get]
func (c *AssociationController) GetAssociationsByFaculty(ctx *gin.Context) {
	memberships, err := c.associationService.GetByFaculty(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(memberships))
}

// GetAssociationsByDepartment lists the members of a department
// @Summary Get associations for a department
// @Tags department-associations
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.DepartmentFaculty}
// @Failure 404 {object} dto.ErrorResponse "No associations found"
// @Router /department-associations/department/{id} [get]
func (c *AssociationController) GetAssociationsByDepartment(ctx *gin.Context) {
	departmentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Department ID must be a valid number")))
		return
	}

	members, err := c.associationService.GetByDepartment(ctx, departmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(members))
}
