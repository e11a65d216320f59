package usecase

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"serverless-api-template/internal/alert"
)

// Relay posts "[<logGroup>] <message>" for each event, one after another.
// Codes holds one status per event.
func (uc *implUseCase) Relay(ctx context.Context, ev alert.Event) (alert.Output, error) {
	data, err := decode(ev.AWSLogs.Data)
	if err != nil {
		return alert.Output{}, err
	}
	uc.l.Debugf(ctx, "alert.Relay: group=%s stream=%s events=%d", data.LogGroup, data.LogStream, len(data.LogEvents))

	codes := make([]int, 0, len(data.LogEvents))
	for _, le := range data.LogEvents {
		res, err := uc.sender.PostMessage(ctx, fmt.Sprintf("[%s] %s", data.LogGroup, le.Message))
		if err != nil {
			return alert.Output{}, fmt.Errorf("post event %s: %w", le.ID, err)
		}
		codes = append(codes, res.StatusCode)
	}

	return alert.Output{Message: alert.MessageFinished, Codes: codes}, nil
}

func decode(encoded string) (alert.LogsData, error) {
	if encoded == "" {
		return alert.LogsData{}, alert.ErrMissingData
	}

	compressed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return alert.LogsData{}, fmt.Errorf("%w: base64: %v", alert.ErrDecode, err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return alert.LogsData{}, fmt.Errorf("%w: gzip: %v", alert.ErrDecode, err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return alert.LogsData{}, fmt.Errorf("%w: gzip: %v", alert.ErrDecode, err)
	}

	var data alert.LogsData
	if err := json.Unmarshal(raw, &data); err != nil {
		return alert.LogsData{}, fmt.Errorf("%w: json: %v", alert.ErrDecode, err)
	}
	return data, nil
}
