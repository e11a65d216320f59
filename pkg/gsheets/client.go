package gsheets

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client wraps the Google Sheets values API.
type Client struct {
	service *sheets.Service
}

// NewClient creates a Sheets client from API client options, typically the
// token source returned by gauth.ClientOption.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Sheets client with a pre-configured HTTP client (useful for testing).
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return NewClient(ctx, option.WithHTTPClient(httpClient))
}

// Fetch reads a range and splits its first HeaderLines rows off as headers.
func (c *Client) Fetch(ctx context.Context, req FetchRequest) (SheetData, error) {
	resp, err := c.service.Spreadsheets.Values.Get(req.SpreadsheetID, req.Range).Context(ctx).Do()
	if err != nil {
		return SheetData{}, fmt.Errorf("gsheets: fetch %s: %w", req.Range, err)
	}

	raw := toStrings(resp.Values)
	n := min(max(req.HeaderLines, 0), len(raw))
	return SheetData{
		Raw:     raw,
		Headers: raw[:n],
		Rows:    raw[n:],
	}, nil
}

// Append writes rows after the last row of a range and returns the HTTP status.
func (c *Client) Append(ctx context.Context, req AppendRequest) (int, error) {
	insert := req.InsertDataOption
	if insert == "" {
		insert = InsertOverwrite
	}
	input := req.ValueInputOption
	if input == "" {
		input = InputUserEntered
	}

	vr := &sheets.ValueRange{Values: toInterfaces(req.Values)}
	resp, err := c.service.Spreadsheets.Values.Append(req.SpreadsheetID, req.Range, vr).
		ValueInputOption(input).
		InsertDataOption(insert).
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("gsheets: append %s: %w", req.Range, err)
	}
	return resp.HTTPStatusCode, nil
}

// Clear empties a range and returns the HTTP status.
func (c *Client) Clear(ctx context.Context, spreadsheetID, rng string) (int, error) {
	resp, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, rng, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("gsheets: clear %s: %w", rng, err)
	}
	return resp.HTTPStatusCode, nil
}

// Reset clears DeleteRange and then appends Rows at InsertRange.
func (c *Client) Reset(ctx context.Context, req ResetRequest) (ResetResult, error) {
	cleared, err := c.Clear(ctx, req.SpreadsheetID, req.DeleteRange)
	if err != nil {
		return ResetResult{}, err
	}
	if cleared != http.StatusOK {
		return ResetResult{Reset: cleared}, fmt.Errorf("gsheets: clear %s returned status %d", req.DeleteRange, cleared)
	}

	updated, err := c.Append(ctx, AppendRequest{
		SpreadsheetID: req.SpreadsheetID,
		Range:         req.InsertRange,
		Values:        req.Rows,
	})
	if err != nil {
		return ResetResult{Reset: cleared}, err
	}
	return ResetResult{Reset: cleared, Update: updated}, nil
}

func toStrings(values [][]interface{}) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = fmt.Sprint(cell)
		}
	}
	return out
}

func toInterfaces(values [][]string) [][]interface{} {
	out := make([][]interface{}, len(values))
	for i, row := range values {
		out[i] = make([]interface{}, len(row))
		for j, cell := range row {
			out[i][j] = cell
		}
	}
	return out
}
