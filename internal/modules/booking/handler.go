package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jamtrips/internal/domain"
	"jamtrips/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

/* ---------- PUBLIC HANDLERS ---------- */

// Submit handles POST /api/v1/bookings
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	b, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

/* ---------- ADMIN HANDLERS ---------- */

// ListAll handles GET /api/v1/admin/bookings
func (h *Handler) ListAll(c *gin.Context) {
	bookings, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateStatus handles PATCH /api/v1/admin/bookings/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status})
}

/* ---------- ROUTE REGISTRATION ---------- */

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/bookings", h.Submit)
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.GET("", h.ListAll)
		bookings.PATCH("/:id/status", h.UpdateStatus)
	}
}

/* ---------- ERROR HANDLING ---------- */

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, ErrNameRequired):
		response.Error(c, http.StatusBadRequest, "NAME_REQUIRED", "Customer name must not be empty")
	case errors.Is(err, ErrPhoneRequired):
		response.Error(c, http.StatusBadRequest, "PHONE_REQUIRED", "Customer phone must not be empty")
	case errors.Is(err, domain.ErrInvalidBookingStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Status must be one of: new, confirmed, cancelled, completed")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	default:
		response.ErrorWithDetails(c, http.StatusInternalServerError, "STORE_ERROR", "Store operation failed", err.Error())
	}
}
