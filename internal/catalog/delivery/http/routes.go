package http

import (
	"github.com/gin-gonic/gin"

	"library-lending/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Reads
// are public; item writes are staff-only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", h.List)
	rg.GET("/search", h.Search)
	rg.GET("/:id", h.Detail)

	rg.POST("", mw.Staff(), h.Create)
	rg.PUT("/:id", mw.Staff(), h.Update)
}
