package utils

import "time"

const (
	timestampLayout      = "2006-01-02 15:04"
	timestampPlaceholder = "-"
)

// FormatTimestamp renders a modification time in the local time zone with
// minute precision. An unknown (zero) time renders as a placeholder so long
// listings keep their columns.
func FormatTimestamp(value time.Time) string {
	if value.IsZero() {
		return timestampPlaceholder
	}
	return value.Local().Format(timestampLayout)
}
