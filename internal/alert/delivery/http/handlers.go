package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serverless-api-template/internal/alert"
	"serverless-api-template/pkg/response"
)

// Relay godoc
// @Summary     Relay log alerts to Slack
// @Description Decodes a base64, gzip compressed log subscription batch and posts every line to the alert channel.
// @Tags        Webhooks
// @Accept      json
// @Produce     json
// @Param       body body relayReq true "Log subscription event"
// @Success     200 {object} relayResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     500 {object} response.MessageResp "Error posting to Slack."
// @Router      /webhooks/alert [POST]
func (h *handler) Relay(c *gin.Context) error {
	ctx := c.Request.Context()

	var req relayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	out, err := h.uc.Relay(ctx, req.toEvent())
	if err != nil {
		h.l.Errorf(ctx, "alert.http.Relay: %v", err)
		c.JSON(http.StatusInternalServerError, response.MessageResp{Message: alert.MessageFailed})
		return nil
	}

	response.OK(c, newRelayResp(out))
	return nil
}
