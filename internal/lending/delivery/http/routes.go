package http

import (
	"github.com/gin-gonic/gin"

	"library-lending/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Submit
// authenticates with the verified-session token; approve and reject
// are staff actions.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", h.Submit)
	rg.GET("/:token", h.Detail)

	rg.POST("/:token/approve", mw.Staff(), h.Approve)
	rg.POST("/:token/reject", mw.Staff(), h.Reject)
}
