package http

type statusResp struct {
	Status bool `json:"status"`
}
