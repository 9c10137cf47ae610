package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Both
// routes are public: they are the front door of verification.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/send", h.Send)
	rg.POST("/verify", h.Verify)
}
