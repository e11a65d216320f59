package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serverless-api-template/pkg/log"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error logs v, maps it to a status and envelope, and aborts the chain with
// that response. v may be any failure value, including nil or a panic value.
func Error(c *gin.Context, l log.Logger, v any) {
	ctx := c.Request.Context()
	log.Track(ctx, l, "response.Error", v)

	status, body := MapError(v)
	c.AbortWithStatusJSON(status, body)
}
