package http

import (
	"github.com/gin-gonic/gin"

	"library-lending/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// return desk is staff territory end to end.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/:token/return", mw.Staff(), h.Lookup)
	rg.POST("/:token/return", mw.Staff(), h.Confirm)
}
