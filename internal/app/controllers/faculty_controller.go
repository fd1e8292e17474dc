package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/senatehub/internal/app/models/dto"
	"github.com/yigit/senatehub/internal/app/services"
	"github.com/yigit/senatehub/internal/middleware"
)

// FacultyController handles faculty member endpoints
type FacultyController struct {
	facultyService services.FacultyService
	baseURL        string
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService, baseURL string) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
		baseURL:        baseURL,
	}
}

// CreateFaculty adds a faculty member
// @Summary Create a faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Param request body dto.FacultyRequest true "Faculty member"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed fields"
// @Failure 409 {object} dto.ErrorResponse "Email exists or senate division unknown"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.FacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data").WithDetails(middleware.FormatBindingError(err))))
		return
	}

	faculty := req.ToModel()
	if err := c.facultyService.Create(ctx, faculty); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("%s/api/faculty/%s", c.baseURL, faculty.Email))
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Faculty member created"))
}

// UpdateFaculty rewrites an existing faculty member
// @Summary Update a faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Param request body dto.FacultyRequest true "Faculty member"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	var req dto.FacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data").WithDetails(middleware.FormatBindingError(err))))
		return
	}

	if err := c.facultyService.Update(ctx, req.ToModel()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Faculty member updated"))
}

// GetFacultyByEmail retrieves a faculty member
// @Summary Get faculty member by email
// @Tags faculty
// @Produce json
// @Param email path string true "Faculty email"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{email} [get]
func (c *FacultyController) GetFacultyByEmail(ctx *gin.Context) {
	faculty, err := c.facultyService.GetByEmail(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(faculty))
}

// GetAllFaculty lists all faculty members
// @Summary List faculty members
// @Tags faculty
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty}
// @Router /faculty [get]
func (c *FacultyController) GetAllFaculty(ctx *gin.Context) {
	members, err := c.facultyService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(members))
}
