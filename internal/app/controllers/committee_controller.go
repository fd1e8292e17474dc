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

// CommitteeController handles committee endpoints
type CommitteeController struct {
	committeeService services.CommitteeService
	baseURL          string
}

// NewCommitteeController creates a new CommitteeController
func NewCommitteeController(committeeService services.CommitteeService, baseURL string) *CommitteeController {
	return &CommitteeController{
		committeeService: committeeService,
		baseURL:          baseURL,
	}
}

// CreateCommittee creates a new committee
// @Summary Create a committee
// @Tags committees
// @Accept json
// @Produce json
// @Param request body dto.CommitteeRequest true "Committee"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed fields"
// @Router /committee [post]
func (c *CommitteeController) CreateCommittee(ctx *gin.Context) {
	var req dto.CommitteeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid committee data").WithDetails(middleware.FormatBindingError(err))))
		return
	}

	committee := &models.Committee{
		Name:        req.Name,
		Description: req.Description,
		TotalSlots:  *req.TotalSlots,
	}

	id, err := c.committeeService.Create(ctx, committee)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("%s/api/committee/%d", c.baseURL, id))
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(committee))
}

// UpdateCommittee rewrites an existing committee
// @Summary Update a committee
// @Tags committees
// @Accept json
// @Produce json
// @Param id path int true "Committee ID"
// @Param request body dto.CommitteeRequest true "Committee"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Committee not found"
// @Router /committee/{id} [put]
func (c *CommitteeController) UpdateCommittee(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Committee ID must be a valid number")))
		return
	}

	var req dto.CommitteeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid committee data").WithDetails(middleware.FormatBindingError(err))))
		return
	}

	committee := &models.Committee{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		TotalSlots:  *req.TotalSlots,
	}

	if err := c.committeeService.Update(ctx, committee); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Committee updated"))
}

// GetCommitteeByID retrieves a committee and its current seat occupancy
// @Summary Get committee by ID
// @Tags committees
// @Produce json
// @Param id path int true "Committee ID"
// @Success 200 {object} dto.APIResponse{data=dto.CommitteeDetailResponse}
// @Failure 404 {object} dto.ErrorResponse "Committee not found"
// @Router /committee/{id} [get]
func (c *CommitteeController) GetCommitteeByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Committee ID must be a valid number")))
		return
	}

	committee, err := c.committeeService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	occupancy, err := c.committeeService.GetOccupancy(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.NewCommitteeDetailResponse(committee, occupancy)))
}

// GetAllCommittees lists all committees
// @Summary List committees
// @Tags committees
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Committee}
// @Router /committees [get]
func (c *CommitteeController) GetAllCommittees(ctx *gin.Context) {
	committees, err := c.committeeService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(committees))
}
