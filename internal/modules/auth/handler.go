package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jamtrips/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to log in")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Bootstrap handles POST /api/v1/auth/setup
func (h *Handler) Bootstrap(c *gin.Context) {
	var req BootstrapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Email and password required", err.Error())
		return
	}

	user, err := h.service.Bootstrap(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrAdminExists):
			response.Error(c, http.StatusForbidden, "ADMIN_EXISTS", "Admin already exists")
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusBadRequest, "EMAIL_TAKEN", "Email already registered")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "BOOTSTRAP_FAILED", "Failed to create admin", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user, "message": "Admin created"})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/setup", h.Bootstrap)
	}
}
