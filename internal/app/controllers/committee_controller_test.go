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

type stubCommitteeService struct {
	createID   int64
	createErr  error
	updateErr  error
	committee  *models.Committee
	committees []*models.Committee
	occupancy  models.CommitteeOccupancy
	getErr     error
}

func (s *stubCommitteeService) Create(ctx context.Context, committee *models.Committee) (int64, error) {
	return s.createID, s.createErr
}

func (s *stubCommitteeService) Update(ctx context.Context, committee *models.Committee) error {
	return s.updateErr
}

func (s *stubCommitteeService) GetByID(ctx context.Context, id int64) (*models.Committee, error) {
	return s.committee, s.getErr
}

func (s *stubCommitteeService) GetAll(ctx context.Context) ([]*models.Committee, error) {
	return s.committees, s.getErr
}

func (s *stubCommitteeService) GetOccupancy(ctx context.Context, id int64) (models.CommitteeOccupancy, error) {
	return s.occupancy, s.getErr
}

func newCommitteeRouter(svc *stubCommitteeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCommitteeController(svc, "http://localhost:8080")

	router := gin.New()
	router.GET("/api/committees", controller.GetAllCommittees)
	api := router.Group("/api/committee")
	api.POST("", controller.CreateCommittee)
	api.PUT("/:id", controller.UpdateCommittee)
	api.GET("/:id", controller.GetCommitteeByID)
	return router
}

func TestCreateCommittee(t *testing.T) {
	t.Run("created with location header", func(t *testing.T) {
		router := newCommitteeRouter(&stubCommitteeService{createID: 42})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/committee",
			strings.NewReader(`{"name": "Budget Committee", "description": "Reviews budgets", "totalSlots": 10}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "http://localhost:8080/api/committee/42", w.Header().Get("Location"))
	})

	t.Run("missing total slots rejected", func(t *testing.T) {
		router := newCommitteeRouter(&stubCommitteeService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/committee",
			strings.NewReader(`{"name": "Budget Committee"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetCommittee(t *testing.T) {
	t.Run("by id includes occupancy", func(t *testing.T) {
		router := newCommitteeRouter(&stubCommitteeService{
			committee: &models.Committee{ID: 7, Name: "Curriculum Committee", TotalSlots: 10},
			occupancy: models.CommitteeOccupancy{TotalSlots: 10, ConsumedSlots: 4},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/committee/7", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Curriculum Committee")
		assert.Contains(t, w.Body.String(), `"freeSlots":6`)
	})

	t.Run("unknown id", func(t *testing.T) {
		router := newCommitteeRouter(&stubCommitteeService{getErr: apperrors.ErrResourceNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/committee/10000", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("all committees may be empty", func(t *testing.T) {
		router := newCommitteeRouter(&stubCommitteeService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/committees", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
