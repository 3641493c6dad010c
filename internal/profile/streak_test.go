package profile

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2024, 3, 15, 20, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		current  int
		lastDate string
		want     int
	}{
		{"first ever completion", 0, "", 1},
		{"same day is a no-op", 4, "2024-03-15", 4},
		{"yesterday extends", 4, "2024-03-14", 5},
		{"two day gap resets", 9, "2024-03-13", 1},
		{"long gap resets", 30, "2024-01-01", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStreak(tt.current, tt.lastDate, now); got != tt.want {
				t.Errorf("NextStreak(%d, %q) = %d, want %d", tt.current, tt.lastDate, got, tt.want)
			}
		})
	}
}

func TestNextStreakAcrossMonthBoundary(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	if got := NextStreak(6, "2024-02-29", now); got != 7 {
		t.Errorf("streak across month boundary = %d, want 7", got)
	}
}
