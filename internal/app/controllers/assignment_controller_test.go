package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/senatehub/internal/app/models"
	"github.com/yigit/senatehub/internal/pkg/apperrors"
)

type stubAssignmentService struct {
	createErr error
	updateErr error
	deleteErr error
	list      []*models.CommitteeAssignment
	listErr   error
}

func (s *stubAssignmentService) Create(ctx context.Context, assignment *models.CommitteeAssignment) error {
	return s.createErr
}

func (s *stubAssignmentService) Update(ctx context.Context, assignment *models.CommitteeAssignment) error {
	return s.updateErr
}

func (s *stubAssignmentService) Delete(ctx context.Context, committeeID int64, email string) error {
	return s.deleteErr
}

func (s *stubAssignmentService) ListByCommittee(ctx context.Context, committeeID int64) ([]*models.CommitteeAssignment, error) {
	return s.list, s.listErr
}

func (s *stubAssignmentService) ListByFaculty(ctx context.Context, email string) ([]*models.CommitteeAssignment, error) {
	return s.list, s.listErr
}

func newAssignmentRouter(svc *stubAssignmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewAssignmentController(svc, "http://localhost:8080")

	router := gin.New()
	api := router.Group("/api/committee-assignment")
	api.POST("", controller.CreateAssignment)
	api.PUT("", controller.UpdateAssignment)
	api.DELETE("/:id/:email", controller.DeleteAssignment)
	api.GET("/committee/:id", controller.GetAssignmentsByCommittee)
	api.GET("/faculty/:email", controller.GetAssignmentsByFaculty)
	return router
}

const validAssignmentBody = `{
	"email": "wolsborn@pdx.edu",
	"committeeId": 16,
	"startDate": "2020-01-01",
	"endDate": "2030-01-01"
}`

func TestCreateAssignment(t *testing.T) {
	t.Run("created with location header", func(t *testing.T) {
		router := newAssignmentRouter(&stubAssignmentService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/committee-assignment", strings.NewReader(validAssignmentBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t,
			"http://localhost:8080/api/committee-assignment/faculty/wolsborn@pdx.edu",
			w.Header().Get("Location"))
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		router := newAssignmentRouter(&stubAssignmentService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/committee-assignment",
			strings.NewReader(`{"email": "wolsborn@pdx.edu"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		router := newAssignmentRouter(&stubAssignmentService{})

		body := `{"email": "wolsborn@pdx.edu", "committeeId": 16, "startDate": "not-a-date", "endDate": "2030-01-01"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/committee-assignment", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("admission rejections map to conflict", func(t *testing.T) {
		rejections := []error{
			apperrors.ErrInvalidDateRange,
			apperrors.ErrDuplicateAssignment,
			apperrors.ErrUnknownReference,
			apperrors.ErrCommitteeFull,
			apperrors.ErrDivisionQuotaReserved,
		}

		for _, rejection := range rejections {
			router := newAssignmentRouter(&stubAssignmentService{createErr: rejection})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/committee-assignment", strings.NewReader(validAssignmentBody))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equalf(t, http.StatusConflict, w.Code, "rejection %v", rejection)
			assert.Empty(t, w.Header().Get("Location"))
		}
	})

	t.Run("transient store failure maps to internal error", func(t *testing.T) {
		router := newAssignmentRouter(&stubAssignmentService{createErr: apperrors.ErrTransientStore})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/committee-assignment", strings.NewReader(validAssignmentBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Unable to complete database transaction")
	})
}

func TestUpdateAssignment(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		router := newAssignmentRouter(&stubAssignmentService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/committee-assignment", strings.NewReader(validAssignmentBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown assignment", func(t *testing.T) {
		router := newAssignmentRouter(&stubAssignmentService{updateErr: apperrors.ErrResourceNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/committee-assignment", strings.NewReader(validAssignmentBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("inverted dates rejected", func(t *testing.T) {
		router := newAssignmentRouter(&stubAssignmentService{updateErr: apperrors.ErrInvalidDateRange})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/committee-assignment", strings.NewReader(validAssignmentBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestDeleteAssignment(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router := newAssignmentRouter(&stubAssignmentService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/committee-assignment/16/wolsborn@pdx.edu", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("repeat delete reports not found", func(t *testing.T) {
		router := newAssignmentRouter(&stubAssignmentService{deleteErr: apperrors.ErrResourceNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/committee-assignment/16/wolsborn@pdx.edu", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric committee id rejected", func(t *testing.T) {
		router := newAssignmentRouter(&stubAssignmentService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/committee-assignment/abc/wolsborn@pdx.edu", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetAssignments(t *testing.T) {
	sample := []*models.CommitteeAssignment{
		{
			Email:       "wolsborn@pdx.edu",
			CommitteeID: 16,
			StartDate:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	t.Run("by committee returns formatted dates", func(t *testing.T) {
		router := newAssignmentRouter(&stubAssignmentService{list: sample})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/committee-assignment/committee/16", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "2020-01-01")
		assert.Contains(t, w.Body.String(), "wolsborn@pdx.edu")
	})

	t.Run("by committee empty list is not found", func(t *testing.T) {
		router := newAssignmentRouter(&stubAssignmentService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/committee-assignment/committee/10000", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("by faculty empty list is not found", func(t *testing.T) {
		router := newAssignmentRouter(&stubAssignmentService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/committee-assignment/faculty/nobody@pdx.edu", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("by faculty returns assignments", func(t *testing.T) {
		router := newAssignmentRouter(&stubAssignmentService{list: sample})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/committee-assignment/faculty/wolsborn@pdx.edu", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"committeeId":16`)
	})
}
