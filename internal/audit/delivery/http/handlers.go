package http

import (
	"github.com/gin-gonic/gin"

	"library-lending/pkg/response"
)

// List godoc
// @Summary     List audit entries
// @Description Returns recorded staff actions newest first, optionally filtered by action and a lower time bound.
// @Tags        Audit
// @Accept      json
// @Produce     json
// @Param       X-Admin-Key header string true  "Staff key"
// @Param       action      query  string false "Filter by action (approval/return)"
// @Param       since       query  string false "RFC 3339 lower bound"
// @Param       limit       query  int    false "Page size (default: 50, max: 500)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Unknown action filter"
// @Router      /api/v1/audit [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}
