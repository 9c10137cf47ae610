package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "library-lending/pkg/errors"
	"library-lending/pkg/response"
)

// Check godoc
// @Summary     Check a member contact
// @Description Reports whether an email or phone belongs to a registered member.
// @Tags        Members
// @Accept      json
// @Produce     json
// @Param       contact query string true "Email or phone"
// @Success     200 {object} checkResp
// @Router      /api/v1/members/check [GET]
func (h *handler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	contact := c.Query("contact")
	if contact == "" {
		response.Error(c, pkgErrors.NewHTTPError(400, "contact is required"))
		return
	}

	output, err := h.uc.Check(ctx, contact)
	if err != nil {
		h.l.Errorf(ctx, "uc.Check: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCheckResp(output))
}

// Import godoc
// @Summary     Bulk import members
// @Description Get-or-creates members from an uploaded CSV file keyed by email.
// @Tags        Members
// @Accept      multipart/form-data
// @Produce     json
// @Param       X-Admin-Key header string true "Staff key"
// @Param       file        formData file  true "CSV file"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "CSV is malformed"
// @Router      /api/v1/members/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(400, "a csv file upload is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(400, "could not read the uploaded file"))
		return
	}
	defer file.Close()

	output, err := h.uc.ImportCSV(ctx, file)
	if err != nil {
		h.l.Errorf(ctx, "uc.ImportCSV: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newImportResp(output))
}
