package catalog

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"jamtrips/internal/domain"
)

func newTestRouter(repo TourRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(NewService(repo, nil), nil)

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterPublicRoutes(v1)
	handler.RegisterAdminRoutes(v1.Group("/admin"))
	return router
}

func TestHandler_GetPublished_NotFoundIsDistinctState(t *testing.T) {
	repo := new(MockTourRepository)
	repo.On("GetPublishedByID", mock.Anything, "hidden").Return(nil, nil)
	router := newTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/tours/hidden", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestHandler_ListPublished(t *testing.T) {
	repo := new(MockTourRepository)
	repo.On("ListPublished", mock.Anything).Return([]domain.Tour{
		{ID: "tour-1", TitleRU: "Самарканд", Price: 95, Currency: domain.CurrencyUSD, IsPublished: true},
	}, nil)
	router := newTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/tours", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Самарканд")
}

func TestHandler_Create_RejectsMissingTitle(t *testing.T) {
	repo := new(MockTourRepository)
	router := newTestRouter(repo)

	body := `{"price": 100, "currency": "USD"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/admin/tours", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandler_Create_SurfacesStoreError(t *testing.T) {
	repo := new(MockTourRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)
	router := newTestRouter(repo)

	body := `{"title_ru": "Тест", "price": 100}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/admin/tours", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "STORE_ERROR")
	// the concrete failure message passes through to the admin
	assert.Contains(t, w.Body.String(), assert.AnError.Error())
}
