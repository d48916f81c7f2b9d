package util

import (
	"fmt"
	"time"
)

// TotalPages returns the number of pages needed to hold totalItems when each
// page carries pageSize items. Zero items means zero pages.
func TotalPages(totalItems int64, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 0
	}

	return int((totalItems + int64(pageSize) - 1) / int64(pageSize))
}

// Offset converts a 1-based page number into a row offset.
func Offset(page, pageSize int) int {
	if page <= 1 {
		return 0
	}

	return (page - 1) * pageSize
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
