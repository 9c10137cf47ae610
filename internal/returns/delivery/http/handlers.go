package http

import (
	"github.com/gin-gonic/gin"

	"library-lending/pkg/response"
)

// Lookup godoc
// @Summary     Look up a loan for return
// @Description Resolves a request token at the return desk: the request and its item, or an error when the token does not identify a returnable physical loan.
// @Tags        Returns
// @Accept      json
// @Produce     json
// @Param       X-Admin-Key header string true "Staff key"
// @Param       token       path   string true "Request token"
// @Success     200 {object} lookupResp
// @Failure     404 {object} response.Resp "Request not found"
// @Failure     409 {object} response.Resp "Digital loans have no physical return"
// @Router      /api/v1/requests/{token}/return [GET]
func (h *handler) Lookup(c *gin.Context) {
	ctx := c.Request.Context()

	token := c.Param("token")
	output, err := h.uc.Lookup(ctx, token)
	if err != nil {
		h.l.Errorf(ctx, "uc.Lookup: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLookupResp(output))
}

// Confirm godoc
// @Summary     Confirm a return
// @Description Closes the loan, releases the item and records the return in the audit log.
// @Tags        Returns
// @Accept      json
// @Produce     json
// @Param       X-Admin-Key header string     true  "Staff key"
// @Param       token       path   string     true  "Request token"
// @Param       body        body   confirmReq false "Actor and optional note"
// @Success     200 {object} confirmResp
// @Failure     404 {object} response.Resp "Request not found"
// @Failure     409 {object} response.Resp "Request is not an active physical loan"
// @Router      /api/v1/requests/{token}/return [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConfirmReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ConfirmReturn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ConfirmReturn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newConfirmResp(output))
}
