package util

import (
	"testing"
	"time"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		pageSize   int
		want       int
	}{
		{name: "exact multiple", totalItems: 40, pageSize: 20, want: 2},
		{name: "partial last page", totalItems: 41, pageSize: 20, want: 3},
		{name: "single item", totalItems: 1, pageSize: 20, want: 1},
		{name: "no items", totalItems: 0, pageSize: 20, want: 0},
		{name: "invalid page size", totalItems: 10, pageSize: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.totalItems, tt.pageSize); got != tt.want {
				t.Fatalf("TotalPages(%d, %d) = %d, want %d", tt.totalItems, tt.pageSize, got, tt.want)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     int
	}{
		{name: "first page", page: 1, pageSize: 20, want: 0},
		{name: "second page", page: 2, pageSize: 20, want: 20},
		{name: "clamps non-positive page", page: 0, pageSize: 20, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Offset(tt.page, tt.pageSize); got != tt.want {
				t.Fatalf("Offset(%d, %d) = %d, want %d", tt.page, tt.pageSize, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{duration: 45 * time.Second, want: "45s"},
		{duration: 5*time.Minute + 10*time.Second, want: "5m10s"},
		{duration: time.Hour + 30*time.Minute, want: "1h30m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.duration); got != tt.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tt.duration, got, tt.want)
		}
	}
}
