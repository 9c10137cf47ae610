package http

import (
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "library-lending/pkg/errors"
)

// processListReq binds the list query parameters and parses the since
// bound.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if req.SinceRaw != "" {
		since, err := time.Parse(time.RFC3339, req.SinceRaw)
		if err != nil {
			return req, pkgErrors.NewHTTPError(400, "since must be RFC 3339")
		}
		req.Since = since
	}
	return req, nil
}
