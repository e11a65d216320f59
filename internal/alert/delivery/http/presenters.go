package http

import "serverless-api-template/internal/alert"

type awsLogsReq struct {
	Data string `json:"data" binding:"required"`
}

type relayReq struct {
	AWSLogs awsLogsReq `json:"awslogs" binding:"required"`
}

func (r relayReq) toEvent() alert.Event {
	return alert.Event{AWSLogs: alert.AWSLogs{Data: r.AWSLogs.Data}}
}

type relayResp struct {
	Message string `json:"message"`
	Codes   []int  `json:"codes"`
}

func newRelayResp(out alert.Output) relayResp {
	return relayResp{Message: out.Message, Codes: out.Codes}
}
