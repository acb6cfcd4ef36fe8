// Package http wires the registration HTTP API.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/localaddons/addons/internal/logging"
	"github.com/localaddons/addons/internal/server/registrations"
)

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(service *registrations.Service, log logging.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	NewRegistrationHandler(service, log).RegisterRoutes(api)

	return router
}
