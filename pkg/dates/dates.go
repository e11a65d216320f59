// Package dates holds the time layouts shared by logs and stored objects.
package dates

import "time"

const (
	DateFormat     = "2006-01-02"
	TimeFormat     = "15:04"
	DTTMFormat     = DateFormat + " " + TimeFormat
	DateTimeFormat = DateFormat + " 15:04:05"

	// Object keys sort lexically by time.
	S3DateFormat     = "20060102"
	S3DateTimeFormat = "20060102150405"
)

// S3Stamp formats t in UTC for use in an object key.
func S3Stamp(t time.Time) string {
	return t.UTC().Format(S3DateTimeFormat)
}
