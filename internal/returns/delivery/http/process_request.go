package http

import (
	"github.com/gin-gonic/gin"
)

// processConfirmReq binds the confirm body (optional) and URI token.
func (h *handler) processConfirmReq(c *gin.Context) (confirmReq, error) {
	var req confirmReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	req.Token = c.Param("token")
	return req, nil
}
