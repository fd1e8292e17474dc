package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/senatehub/internal/app/models/dto"
	"github.com/yigit/senatehub/internal/app/services"
	"github.com/yigit/senatehub/internal/middleware"
	"github.com/yigit/senatehub/internal/pkg/apperrors"
)

// SurveyController handles committee-interest survey endpoints
type SurveyController struct {
	surveyService services.SurveyService
	baseURL       string
}

// NewSurveyController creates a new SurveyController
func NewSurveyController(surveyService services.SurveyService, baseURL string) *SurveyController {
	return &SurveyController{
		surveyService: surveyService,
		baseURL:       baseURL,
	}
}

// CreateSurveyResponse records a member's interest survey
// @Summary Create a survey response
// @Tags survey-data
// @Accept json
// @Produce json
// @Param request body dto.SurveyResponseRequest true "Survey response"
// @Success 201 {object} dto.APIResponse
// @Failure 409 {object} dto.ErrorResponse "Already exists or unknown faculty"
// @Router /survey-data [post]
func (c *SurveyController) CreateSurveyResponse(ctx *gin.Context) {
	var req dto.SurveyResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid survey data").WithDetails(middleware.FormatBindingError(err))))
		return
	}

	response, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(err.Error()))
		return
	}

	if err := c.surveyService.Create(ctx, response); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("%s/api/survey-data/%d/%s", c.baseURL, response.SurveyDate.Year(), response.Email))
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Survey response created"))
}

// UpdateSurveyResponse rewrites a member's survey for the same date
// @Summary Update a survey response
// @Tags survey-data
// @Accept json
// @Produce json
// @Param request body dto.SurveyResponseRequest true "Survey response"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Survey response not found"
// @Router /survey-data [put]
func (c *SurveyController) UpdateSurveyResponse(ctx *gin.Context) {
	var req dto.SurveyResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid survey data").WithDetails(middleware.FormatBindingError(err))))
		return
	}

	response, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(err.Error()))
		return
	}

	if err := c.surveyService.Update(ctx, response); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Survey response updated"))
}

// GetSurveyResponse retrieves a member's survey for one year
// @Summary Get a survey response
// @Tags survey-data
// @Produce json
// @Param year path int true "Survey year"
// @Param email path string true "Faculty email"
// @Success 200 {object} dto.APIResponse{data=dto.SurveyResponseData}
// @Failure 404 {object} dto.ErrorResponse "Survey response not found"
// @Router /survey-data/{year}/{email} [get]
func (c *SurveyController) GetSurveyResponse(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Survey year must be a valid number")))
		return
	}

	response, err := c.surveyService.GetByYearAndEmail(ctx, year, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.NewSurveyResponseData(response)))
}
