package main

import (
	"github.com/tr4cks/lights/lights"

	"github.com/gin-gonic/gin"
)

// SupportedTypesMiddleware snapshots the configured light types for the
// routes that render them.
func SupportedTypesMiddleware(controller *lights.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("types", controller.SupportedTypes())

		c.Next()
	}
}
