package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "library-lending/pkg/errors"
)

// SessionTokenHeader carries the verified-session token on member
// routes.
const SessionTokenHeader = "X-Session-Token"

// processSubmitReq binds the submit body and lifts the session token
// out of the header.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionToken = c.GetHeader(SessionTokenHeader)
	if req.SessionToken == "" {
		return req, pkgErrors.NewHTTPError(401, "session token is required")
	}
	return req, nil
}

// processApproveReq binds the approve body (optional) and URI token.
func (h *handler) processApproveReq(c *gin.Context) (approveReq, error) {
	var req approveReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	req.Token = c.Param("token")
	return req, nil
}
