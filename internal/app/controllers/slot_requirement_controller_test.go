package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/pkg/apperrors"
)

type stubSlotRequirementService struct {
	createErr    error
	updateErr    error
	deleteErr    error
	requirements []*models.SlotRequirement
	getErr       error
}

func (s *stubSlotRequirementService) Create(ctx context.Context, requirement *models.SlotRequirement) error {
	return s.createErr
}

func (s *stubSlotRequirementService) Update(ctx context.Context, requirement *models.SlotRequirement) error {
	return s.updateErr
}

func (s *stubSlotRequirementService) Delete(ctx context.Context, committeeID int64, senateDivision string) error {
	return s.deleteErr
}

func (s *stubSlotRequirementService) GetByCommittee(ctx context.Context, committeeID int64) ([]*models.SlotRequirement, error) {
	return s.requirements, s.getErr
}

func (s *stubSlotRequirementService) GetBySenateDivision(ctx context.Context, senateDivision string) ([]*models.SlotRequirement, error) {
	return s.requirements, s.getErr
}

func newSlotRequirementRouter(svc *stubSlotRequirementService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewSlotRequirementController(svc, "http://localhost:8080")

	router := gin.New()
	api := router.Group("/api/committee-slots")
	api.POST("", controller.CreateSlotRequirement)
	api.PUT("/:id/:name", controller.UpdateSlotRequirement)
	api.DELETE("/:id/:name", controller.DeleteSlotRequirement)
	api.GET("/committee/:id", controller.GetByCommittee)
	api.GET("/senate-division/:shortname", controller.GetBySenateDivision)
	return router
}

func TestCreateSlotRequirement(t *testing.T) {
	body := `{"committeeId": 16, "senateDivision": "CLAS-SCI", "slotRequirements": 2}`

	t.Run("created with location header", func(t *testing.T) {
		router := newSlotRequirementRouter(&stubSlotRequirementService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/committee-slots", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t,
			"http://localhost:8080/api/committee-slots/committee/16",
			w.Header().Get("Location"))
	})

	t.Run("unknown committee or division is a conflict", func(t *testing.T) {
		router := newSlotRequirementRouter(&stubSlotRequirementService{createErr: apperrors.ErrUnknownReference})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/committee-slots", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing slotRequirements rejected", func(t *testing.T) {
		router := newSlotRequirementRouter(&stubSlotRequirementService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/committee-slots",
			strings.NewReader(`{"committeeId": 16, "senateDivision": "CLAS-SCI"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateSlotRequirement(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		router := newSlotRequirementRouter(&stubSlotRequirementService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/committee-slots/16/CLAS-SCI",
			strings.NewReader(`{"slotRequirements": 0}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown requirement", func(t *testing.T) {
		router := newSlotRequirementRouter(&stubSlotRequirementService{updateErr: apperrors.ErrResourceNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/committee-slots/16/CLAS-SCI",
			strings.NewReader(`{"slotRequirements": 3}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteSlotRequirement(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router := newSlotRequirementRouter(&stubSlotRequirementService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/committee-slots/16/CLAS-SCI", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown requirement", func(t *testing.T) {
		router := newSlotRequirementRouter(&stubSlotRequirementService{deleteErr: apperrors.ErrResourceNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/committee-slots/16/CLAS-SCI", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetSlotRequirements(t *testing.T) {
	sample := []*models.SlotRequirement{
		{CommitteeID: 16, SenateDivision: "CLAS-SCI", SlotRequirements: 2},
	}

	t.Run("by committee", func(t *testing.T) {
		router := newSlotRequirementRouter(&stubSlotRequirementService{requirements: sample})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/committee-slots/committee/16", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "CLAS-SCI")
	})

	t.Run("by committee empty list is not found", func(t *testing.T) {
		router := newSlotRequirementRouter(&stubSlotRequirementService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/committee-slots/committee/10000", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("by senate division empty list is not found", func(t *testing.T) {
		router := newSlotRequirementRouter(&stubSlotRequirementService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/committee-slots/senate-division/UNST", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
