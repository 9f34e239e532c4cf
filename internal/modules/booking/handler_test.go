package booking

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(repo BookingRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(NewService(repo))

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterPublicRoutes(v1)
	handler.RegisterAdminRoutes(v1.Group("/admin"))
	return router
}

func TestHandler_Submit_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	router := newTestRouter(repo)

	body := `{"customer_name": "Елена", "customer_phone": "+998901234567", "guests_count": 2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"new"`)
}

func TestHandler_Submit_MissingPhoneNamesTheField(t *testing.T) {
	repo := new(MockBookingRepository)
	router := newTestRouter(repo)

	body := `{"customer_name": "Елена", "customer_phone": "   "}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PHONE_REQUIRED")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	repo := new(MockBookingRepository)
	router := newTestRouter(repo)

	body := `{"status": "archived"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/api/v1/admin/bookings/booking-1/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATUS")
}
