package httpserver

import (
	"github.com/gin-gonic/gin"

	"serverless-api-template/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "serverless-api-template"
)

type healthResp struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

func (srv *HTTPServer) health(status string) healthResp {
	return healthResp{
		Status:      status,
		Service:     ServiceName,
		Version:     HealthVersion,
		Environment: srv.environment,
	}
}

// healthCheck godoc
// @Summary Health Check
// @Tags    Health
// @Produce json
// @Success 200 {object} healthResp
// @Router  /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.health("healthy"))
}

// readyCheck godoc
// @Summary Readiness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} healthResp
// @Router  /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.health("ready"))
}

// liveCheck godoc
// @Summary Liveness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} healthResp
// @Router  /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.health("alive"))
}
