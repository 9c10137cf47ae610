package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"library-lending/pkg/response"
)

// StaffKeyHeader carries the shared staff key on admin routes.
const StaffKeyHeader = "X-Admin-Key"

// Staff guards staff-only routes with the shared admin key. An empty
// configured key locks the routes entirely rather than opening them.
func (m Middleware) Staff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.staffKey == "" {
			m.l.Warnf(c.Request.Context(), "middleware.Staff: no staff key configured, rejecting")
			response.Forbidden(c)
			c.Abort()
			return
		}

		got := c.GetHeader(StaffKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.staffKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
