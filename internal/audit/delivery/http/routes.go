package http

import (
	"github.com/gin-gonic/gin"

	"library-lending/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// audit log is staff-only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", mw.Staff(), h.List)
}
