package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "library-lending/pkg/errors"
)

func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewHTTPError(400, "id must be a positive integer")
	}
	return id, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSearchReq binds the search query parameters.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateReq binds and validates the create item body.
func (h *handler) processCreateReq(c *gin.Context) (createItemReq, error) {
	var req createItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update item body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateItemReq, error) {
	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}
