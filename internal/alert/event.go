package alert

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
)

// NewEvent encodes data the way the log subscription delivers it.
func NewEvent(data LogsData) (Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Event{}, err
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return Event{}, err
	}
	if err := zw.Close(); err != nil {
		return Event{}, err
	}

	return Event{AWSLogs: AWSLogs{Data: base64.StdEncoding.EncodeToString(buf.Bytes())}}, nil
}
