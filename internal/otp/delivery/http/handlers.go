package http

import (
	"github.com/gin-gonic/gin"

	"library-lending/pkg/response"
)

// Send godoc
// @Summary     Send a verification code
// @Description Sends a one-time passcode to the phone of the member matching the contact.
// @Tags        OTP
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "Member contact (email or phone)"
// @Success     200 {object} sendResp
// @Failure     404 {object} response.Resp "No member matches that contact"
// @Failure     429 {object} response.Resp "Too many codes requested"
// @Router      /api/v1/otp/send [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Issue(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Issue: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendResp(output))
}

// Verify godoc
// @Summary     Verify a code
// @Description Exchanges a valid code for a short-lived session token.
// @Tags        OTP
// @Accept      json
// @Produce     json
// @Param       body body verifyReq true "Contact and code"
// @Success     200 {object} verifyResp
// @Failure     401 {object} response.Resp "Code is invalid or expired"
// @Failure     404 {object} response.Resp "No member matches that contact"
// @Router      /api/v1/otp/verify [POST]
func (h *handler) Verify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVerifyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Verify(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Verify: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newVerifyResp(output))
}
