package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/richxcame/rentaride/pkg/common"
	"github.com/richxcame/rentaride/pkg/validation"
)

// Handler handles authentication HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new auth handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers auth routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}

// Login exchanges the admin credential pair for a session token
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			common.ErrorResponse(c, http.StatusUnauthorized, err.Error())
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to log in")
		return
	}

	common.SuccessResponse(c, resp)
}
