package utils

import "fmt"

const (
	kilobyte = 1024
	megabyte = kilobyte * 1024
	gigabyte = megabyte * 1024
)

// FormatFileSize converts a byte length into a human-readable string with a
// binary unit. Values below one kilobyte are printed as whole bytes, larger
// values with two decimals in the largest fitting unit up to gigabytes.
func FormatFileSize(bytes int64) string {
	switch {
	case bytes < 0:
		return "0 B"
	case bytes >= gigabyte:
		return fmt.Sprintf("%.2f GB", float64(bytes)/gigabyte)
	case bytes >= megabyte:
		return fmt.Sprintf("%.2f MB", float64(bytes)/megabyte)
	case bytes >= kilobyte:
		return fmt.Sprintf("%.2f KB", float64(bytes)/kilobyte)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
