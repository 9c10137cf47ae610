package http

import (
	"github.com/gin-gonic/gin"

	"library-lending/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// check route is public; bulk import is staff-only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/check", h.Check)
	rg.POST("/import", mw.Staff(), h.Import)
}
