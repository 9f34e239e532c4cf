package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jamtrips/internal/domain"
	"jamtrips/internal/pkg/response"
	"jamtrips/internal/upload"
)

type Handler struct {
	service *Service
	uploads *upload.Service
}

func NewHandler(service *Service, uploads *upload.Service) *Handler {
	return &Handler{
		service: service,
		uploads: uploads,
	}
}

/* ---------- PUBLIC HANDLERS ---------- */

// ListPublished handles GET /api/v1/tours
func (h *Handler) ListPublished(c *gin.Context) {
	tours, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tours": tours})
}

// GetPublished handles GET /api/v1/tours/:id
//
// A missing or unpublished tour is a not-found result, kept distinct
// from store errors so the page can render its own not-found state.
func (h *Handler) GetPublished(c *gin.Context) {
	tour, err := h.service.GetPublished(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	if tour == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Tour not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tour": tour})
}

/* ---------- ADMIN HANDLERS ---------- */

// ListAll handles GET /api/v1/admin/tours
func (h *Handler) ListAll(c *gin.Context) {
	tours, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tours": tours})
}

// Create handles POST /api/v1/admin/tours
func (h *Handler) Create(c *gin.Context) {
	var req TourPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	tour, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"tour": tour})
}

// Update handles PUT /api/v1/admin/tours/:id
func (h *Handler) Update(c *gin.Context) {
	var req TourPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	tour, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tour": tour})
}

// SetPublished handles PATCH /api/v1/admin/tours/:id/publish
func (h *Handler) SetPublished(c *gin.Context) {
	var req SetPublishedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	if err := h.service.SetPublished(c.Request.Context(), c.Param("id"), *req.IsPublished); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "is_published": *req.IsPublished})
}

// Delete handles DELETE /api/v1/admin/tours/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// UploadImages handles POST /api/v1/admin/tours/images
//
// Multipart upload for the edit form. The form field "purpose" selects
// covers or gallery; the returned URLs go into the subsequent tour save.
// Any failed file aborts the whole request so the admin never persists a
// half-uploaded set.
func (h *Handler) UploadImages(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Failed to parse multipart form")
		return
	}

	purpose := c.PostForm("purpose")
	if purpose == "" {
		purpose = upload.PurposeGallery
	}

	files := c.Request.MultipartForm.File["images"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, "NO_FILES", "No images uploaded")
		return
	}

	var urls []string
	for _, file := range files {
		url, err := h.uploads.Save(file, purpose)
		if err != nil {
			switch {
			case errors.Is(err, upload.ErrInvalidPurpose):
				response.Error(c, http.StatusBadRequest, "INVALID_PURPOSE", "Purpose must be covers or gallery")
			case errors.Is(err, upload.ErrEmptyFile),
				errors.Is(err, upload.ErrFileTooLarge),
				errors.Is(err, upload.ErrInvalidMimeType):
				response.Error(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
			default:
				response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", err.Error())
			}
			return
		}
		urls = append(urls, url)
	}

	response.Success(c, http.StatusOK, gin.H{"urls": urls})
}

/* ---------- ROUTE REGISTRATION ---------- */

// RegisterPublicRoutes registers the published-tour read endpoints
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	tours := r.Group("/tours")
	{
		tours.GET("", h.ListPublished)
		tours.GET("/:id", h.GetPublished)
	}
}

// RegisterAdminRoutes registers the management endpoints. The admin
// group is expected to carry auth + role middleware.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	tours := r.Group("/tours")
	{
		tours.GET("", h.ListAll)
		tours.POST("", h.Create)
		tours.POST("/images", h.UploadImages)
		tours.PUT("/:id", h.Update)
		tours.PATCH("/:id/publish", h.SetPublished)
		tours.DELETE("/:id", h.Delete)
	}
}

/* ---------- ERROR HANDLING ---------- */

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Tour not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Primary-language title is required and price must be non-negative")
	case errors.Is(err, domain.ErrInvalidCurrency):
		response.Error(c, http.StatusBadRequest, "INVALID_CURRENCY", "Currency must be one of: USD, EUR, UZS")
	case errors.Is(err, domain.ErrInvalidTourType):
		response.Error(c, http.StatusBadRequest, "INVALID_TOUR_TYPE", "Tour type must be individual or group")
	default:
		// Store failures pass through so the admin sees what went wrong.
		response.ErrorWithDetails(c, http.StatusInternalServerError, "STORE_ERROR", "Store operation failed", err.Error())
	}
}
