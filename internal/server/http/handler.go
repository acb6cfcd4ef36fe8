package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/localaddons/addons/internal/common"
	"github.com/localaddons/addons/internal/logging"
	"github.com/localaddons/addons/internal/server/registrations"
)

// RegistrationHandler serves the registration endpoints.
type RegistrationHandler struct {
	service *registrations.Service
	log     logging.Logger
}

func NewRegistrationHandler(service *registrations.Service, log logging.Logger) *RegistrationHandler {
	return &RegistrationHandler{service: service, log: log}
}

func (h *RegistrationHandler) Create(c *gin.Context) {
	var in registrations.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format in request body."})
		return
	}

	id, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. Please check all fields."})
		case errors.Is(err, common.ErrAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{"error": "You are already registered for this workshop."})
		default:
			h.log.Error(c.Request.Context(), "create registration", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Registration submitted successfully!",
		"id":      id,
	})
}

func (h *RegistrationHandler) List(c *gin.Context) {
	regs, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.Error(c.Request.Context(), "list registrations", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch registrations."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    regs,
		"count":   len(regs),
	})
}

// RegisterRoutes mounts the registration endpoints on the router group.
func (h *RegistrationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/registrations", h.Create)
	rg.GET("/registrations", h.List)
}
