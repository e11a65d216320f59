package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "serverless-api-template/pkg/errors"
	"serverless-api-template/pkg/response"
)

// Get godoc
// @Summary     Root status
// @Description Answers {"status": true} when the request carries a query string.
// @Tags        Root
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     400 {object} response.ErrorResp "[101] bad params"
// @Router      /v1/root [GET]
// @Router      /v2/project/root [GET]
func (h *handler) Get(c *gin.Context) error {
	if c.Request.URL.RawQuery == "" {
		return pkgErrors.BadRequest(pkgErrors.CodeBadParams)
	}

	response.OK(c, statusResp{Status: true})
	return nil
}
