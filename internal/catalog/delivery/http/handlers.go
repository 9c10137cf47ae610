package http

import (
	"github.com/gin-gonic/gin"

	"library-lending/pkg/response"
)

// List godoc
// @Summary     List recent items
// @Description Returns the most recently added catalog items.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       limit query int false "Page size (default: 20, max: 100)"
// @Success     200 {object} listResp
// @Router      /api/v1/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListRecent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRecent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Search godoc
// @Summary     Search items
// @Description Case-insensitive search across title, author and keywords. A blank query returns the recent listing.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       q     query string false "Search query"
// @Param       limit query int    false "Page size (default: 20, max: 100)"
// @Success     200 {object} listResp
// @Router      /api/v1/items/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single catalog item by its ID.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} itemDetailResp
// @Failure     404 {object} response.Resp "Item not found"
// @Router      /api/v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemDetailResp(output))
}

// Create godoc
// @Summary     Add a catalog item
// @Description Registers a new item. New items start available.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       X-Admin-Key header string        true "Staff key"
// @Param       body        body   createItemReq true "Item data"
// @Success     200 {object} itemDetailResp
// @Failure     400 {object} response.Resp "Missing required fields"
// @Router      /api/v1/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemDetailResp(output))
}

// Update godoc
// @Summary     Update a catalog item
// @Description Rewrites the descriptive fields of an item. Availability is never changed here.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       X-Admin-Key header string        true "Staff key"
// @Param       id          path   int           true "Item ID"
// @Param       body        body   updateItemReq true "Item data"
// @Success     200 {object} itemDetailResp
// @Failure     404 {object} response.Resp "Item not found"
// @Router      /api/v1/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemDetailResp(output))
}
