package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/senatehub/internal/app/models/dto"
	"github.com/yigit/senatehub/internal/app/services"
	"github.com/yigit/senatehub/internal/middleware"
)

// AssignmentController handles committee assignment endpoints
type AssignmentController struct {
	assignmentService services.AssignmentService
	baseURL           string
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService, baseURL string) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
		baseURL:           baseURL,
	}
}

// CreateAssignment assigns a faculty member to a committee
// @Summary Create a committee assignment
// @Description Admits and creates an assignment subject to capacity and division-quota rules
// @Tags committee-assignments
// @Accept json
// @Produce json
// @Param request body dto.CommitteeAssignmentRequest true "Assignment"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed fields"
// @Failure 409 {object} dto.ErrorResponse "Admission rejected"
// @Failure 500 {object} dto.ErrorResponse "Transient store failure"
// @Router /committee-assignment [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req dto.CommitteeAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment data").WithDetails(middleware.FormatBindingError(err))))
		return
	}

	assignment, err := req.ToModel()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	if err := c.assignmentService.Create(ctx, assignment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("%s/api/committee-assignment/faculty/%s", c.baseURL, assignment.Email))
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Committee assignment created"))
}

// UpdateAssignment changes an assignment's date range
// @Summary Update a committee assignment
// @Tags committee-assignments
// @Accept json
// @Produce json
// @Param request body dto.CommitteeAssignmentRequest true "Assignment"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid date range"
// @Router /committee-assignment [put]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	var req dto.CommitteeAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment data").WithDetails(middleware.FormatBindingError(err))))
		return
	}

	assignment, err := req.ToModel()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	if err := c.assignmentService.Update(ctx, assignment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Committee assignment updated"))
}

// DeleteAssignment frees a committee seat
// @Summary Delete a committee assignment
// @Tags committee-assignments
// @Produce json
// @Param id path int true "Committee ID"
// @Param email path string true "Faculty email"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /committee-assignment/{id}/{email} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	committeeID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Committee ID must be a valid number")))
		return
	}

	if err := c.assignmentService.Delete(ctx, committeeID, ctx.Param("email")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Committee assignment deleted"))
}

// GetAssignmentsByCommittee lists the assignments on a committee
// @Summary List assignments by committee
// @Tags committee-assignments
// @Produce json
// @Param id path int true "Committee ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CommitteeAssignmentResponse}
// @Failure 404 {object} dto.ErrorResponse "No assignments found"
// @Router /committee-assignment/committee/{id} [get]
func (c *AssignmentController) GetAssignmentsByCommittee(ctx *gin.Context) {
	committeeID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Committee ID must be a valid number")))
		return
	}

	assignments, err := c.assignmentService.ListByCommittee(ctx, committeeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(assignments) == 0 {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "No assignments found for this committee")))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.NewCommitteeAssignmentListResponse(assignments)))
}

// GetAssignmentsByFaculty lists the assignments a faculty member holds
// @Summary List assignments by faculty member
// @Tags committee-assignments
// @Produce json
// @Param email path string true "Faculty email"
// @Success 200 {object} dto.APIResponse{data=[]dto.CommitteeAssignmentResponse}
// @Failure 404 {object} dto.ErrorResponse "No assignments found"
// @Router /committee-assignment/faculty/{email} [get]
func (c *AssignmentController) GetAssignmentsByFaculty(ctx *gin.Context) {
	email := ctx.Param("email")

	assignments, err := c.assignmentService.ListByFaculty(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(assignments) == 0 {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "No assignments found for this faculty member")))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.NewCommitteeAssignmentListResponse(assignments)))
}
