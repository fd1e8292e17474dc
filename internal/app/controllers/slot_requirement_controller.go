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

// SlotRequirementController handles per-division seat reservation endpoints
type SlotRequirementController struct {
	slotRequirementService services.SlotRequirementService
	baseURL                string
}

// NewSlotRequirementController creates a new SlotRequirementController
func NewSlotRequirementController(slotRequirementService services.SlotRequirementService, baseURL string) *SlotRequirementController {
	return &SlotRequirementController{
		slotRequirementService: slotRequirementService,
		baseURL:                baseURL,
	}
}

// CreateSlotRequirement registers a division's reserved seats on a committee
// @Summary Create a slot requirement
// @Tags committee-slots
// @Accept json
// @Produce json
// @Param request body dto.SlotRequirementRequest true "Slot requirement"
// @Success 201 {object} dto.APIResponse
// @Failure 409 {object} dto.ErrorResponse "Already exists or unknown committee/division"
// @Router /committee-slots [post]
func (c *SlotRequirementController) CreateSlotRequirement(ctx *gin.Context) {
	var req dto.SlotRequirementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid slot requirement data").WithDetails(middleware.FormatBindingError(err))))
		return
	}

	requirement := &models.SlotRequirement{
		CommitteeID:      req.CommitteeID,
		SenateDivision:   req.SenateDivision,
		SlotRequirements: *req.SlotRequirements,
	}

	if err := c.slotRequirementService.Create(ctx, requirement); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("%s/api/committee-slots/committee/%d", c.baseURL, requirement.CommitteeID))
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Slot requirement created"))
}

// UpdateSlotRequirement changes the reserved seat count
// @Summary Update a slot requirement
// @Tags committee-slots
// @Accept json
// @Produce json
// @Param id path int true "Committee ID"
// @Param name path string true "Senate division short name"
// @Param request body dto.SlotRequirementUpdateRequest true "Slot requirement"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Requirement not found"
// @Router /committee-slots/{id}/{name} [put]
func (c *SlotRequirementController) UpdateSlotRequirement(ctx *gin.Context) {
	committeeID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Committee ID must be a valid number")))
		return
	}

	var req dto.SlotRequirementUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid slot requirement data").WithDetails(middleware.FormatBindingError(err))))
		return
	}

	requirement := &models.SlotRequirement{
		CommitteeID:      committeeID,
		SenateDivision:   ctx.Param("name"),
		SlotRequirements: *req.SlotRequirements,
	}

	if err := c.slotRequirementService.Update(ctx, requirement); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Slot requirement updated"))
}

// DeleteSlotRequirement removes a division's reservation from a committee
// @Summary Delete a slot requirement
// @Tags committee-slots
// @Produce json
// @Param id path int true "Committee ID"
// @Param name path string true "Senate division short name"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Requirement not found"
// @Router /committee-slots/{id}/{name} [delete]
func (c *SlotRequirementController) DeleteSlotRequirement(ctx *gin.Context) {
	committeeID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Committee ID must be a valid number")))
		return
	}

	if err := c.slotRequirementService.Delete(ctx, committeeID, ctx.Param("name")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Slot requirement deleted"))
}

// GetByCommittee lists the reservations registered on a committee
// @Summary List slot requirements by committee
// @Tags committee-slots
// @Produce json
// @Param id path int true "Committee ID"
// @Success 200 {object} dto.APIResponse{data=[]models.SlotRequirement}
// @Failure 404 {object} dto.ErrorResponse "No requirements found"
// @Router /committee-slots/committee/{id} [get]
func (c *SlotRequirementController) GetByCommittee(ctx *gin.Context) {
	committeeID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Committee ID must be a valid number")))
		return
	}

	requirements, err := c.slotRequirementService.GetByCommittee(ctx, committeeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(requirements) == 0 {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "No slot requirements found for this committee")))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(requirements))
}

// GetBySenateDivision lists the reservations registered for a division
// @Summary List slot requirements by senate division
// @Tags committee-slots
// @Produce json
// @Param shortname path string true "Senate division short name"
// @Success 200 {object} dto.APIResponse{data=[]models.SlotRequirement}
// @Failure 404 {object} dto.ErrorResponse "No requirements found"
// @Router /committee-slots/senate-division/{shortname} [get]
func (c *SlotRequirementController) GetBySenateDivision(ctx *gin.Context) {
	requirements, err := c.slotRequirementService.GetBySenateDivision(ctx, ctx.Param("shortname"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(requirements) == 0 {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "No slot requirements found for this senate division")))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(requirements))
}
