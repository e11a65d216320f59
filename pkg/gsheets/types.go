package gsheets

import "google.golang.org/api/sheets/v4"

// Scope grants read/write access to spreadsheets.
const Scope = sheets.SpreadsheetsScope

const (
	InsertOverwrite  = "OVERWRITE"
	InsertRows       = "INSERT_ROWS"
	InputUserEntered = "USER_ENTERED"
	InputRaw         = "RAW"
)

// FetchRequest selects a range. HeaderLines rows at the top are returned as
// Headers; use 0 for none.
type FetchRequest struct {
	SpreadsheetID string
	Range         string
	HeaderLines   int
}

// SheetData is the content of a fetched range.
type SheetData struct {
	Raw     [][]string `json:"raw"`
	Headers [][]string `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// AppendRequest describes rows to append. Empty options default to
// InsertOverwrite and InputUserEntered.
type AppendRequest struct {
	SpreadsheetID    string
	Range            string
	Values           [][]string
	InsertDataOption string
	ValueInputOption string
}

// ResetRequest replaces the content of a sheet.
type ResetRequest struct {
	SpreadsheetID string
	InsertRange   string
	DeleteRange   string
	Rows          [][]string
}

// ResetResult holds the HTTP status of each step of Reset.
type ResetResult struct {
	Reset  int `json:"reset"`
	Update int `json:"update"`
}
