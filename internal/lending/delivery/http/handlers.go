package http

import (
	"github.com/gin-gonic/gin"

	"library-lending/pkg/response"
)

// Submit godoc
// @Summary     Submit a loan request
// @Description Creates a loan request for the verified member. Digital items are approved immediately; physical items are placed on hold pending staff approval.
// @Tags        Lending
// @Accept      json
// @Produce     json
// @Param       X-Session-Token header string    true "Verified session token"
// @Param       body            body   submitReq true "Item to borrow"
// @Success     200 {object} submitResp
// @Failure     401 {object} response.Resp "Session missing or expired"
// @Failure     404 {object} response.Resp "Item not found"
// @Failure     409 {object} response.Resp "Item unavailable or borrowing limit reached"
// @Router      /api/v1/requests [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Submit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// Detail godoc
// @Summary     Get a loan request
// @Description Returns the current state of a loan request by its token.
// @Tags        Lending
// @Accept      json
// @Produce     json
// @Param       token path string true "Request token"
// @Success     200 {object} requestResp
// @Failure     404 {object} response.Resp "Request not found"
// @Router      /api/v1/requests/{token} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	token := c.Param("token")
	output, err := h.uc.Detail(ctx, token)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRequestResp(output))
}

// Approve godoc
// @Summary     Approve a pending request
// @Description Confirms a pending physical request: the item becomes taken and the due date is fixed. Repeating the call is a no-op.
// @Tags        Lending
// @Accept      json
// @Produce     json
// @Param       X-Admin-Key header string     true  "Staff key"
// @Param       token       path   string     true  "Request token"
// @Param       body        body   approveReq false "Actor and optional note"
// @Success     200 {object} requestResp
// @Failure     404 {object} response.Resp "Request not found"
// @Failure     409 {object} response.Resp "Request already rejected or expired"
// @Router      /api/v1/requests/{token}/approve [POST]
func (h *handler) Approve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processApproveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Approve(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Approve: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRequestResp(output))
}

// Reject godoc
// @Summary     Reject a request
// @Description Rejects a request and releases any hold on the item. Repeating the call is a no-op.
// @Tags        Lending
// @Accept      json
// @Produce     json
// @Param       X-Admin-Key header string true "Staff key"
// @Param       token       path   string true "Request token"
// @Success     200 {object} requestResp
// @Failure     404 {object} response.Resp "Request not found"
// @Router      /api/v1/requests/{token}/reject [POST]
func (h *handler) Reject(c *gin.Context) {
	ctx := c.Request.Context()

	token := c.Param("token")
	output, err := h.uc.Reject(ctx, token)
	if err != nil {
		h.l.Errorf(ctx, "uc.Reject: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRequestResp(output))
}
