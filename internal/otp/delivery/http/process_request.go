package http

import (
	"github.com/gin-gonic/gin"
)

// processSendReq binds and validates the send-code request body.
func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processVerifyReq binds and validates the verify-code request body.
func (h *handler) processVerifyReq(c *gin.Context) (verifyReq, error) {
	var req verifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
