package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/topacai/top-acai-backend/internal/menu"
)

// RegisterMenuRoutes serves the read-only menu catalog.
func RegisterMenuRoutes(r *gin.Engine, catalog *menu.Catalog) {
	r.GET("/api/menu", func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog)
	})
}
