package engine

import (
	"testing"
	"time"

	"learnbotx_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateStreakBoundaries(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		hoursAgo    time.Duration
		current     int
		longest     int
		wantCurrent int
		wantLongest int
	}{
		{"same moment", 0, 3, 5, 3, 5},
		{"exactly 24h stays same-day", 24 * time.Hour, 3, 5, 3, 5},
		{"just past 24h extends", 24*time.Hour + 6*time.Minute, 3, 5, 4, 5},
		{"just under 48h extends", 47*time.Hour + 54*time.Minute, 3, 5, 4, 5},
		{"exactly 48h resets", 48 * time.Hour, 3, 5, 1, 5},
		{"past 48h resets", 48*time.Hour + 6*time.Minute, 3, 5, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateStreak(model.Streak{
				Current:    tt.current,
				Longest:    tt.longest,
				LastActive: now.Add(-tt.hoursAgo),
			}, now)

			assert.Equal(t, tt.wantCurrent, got.Current)
			assert.Equal(t, tt.wantLongest, got.Longest)
			assert.Equal(t, now, got.LastActive)
		})
	}
}

func TestEvaluateStreakNewHighWaterMark(t *testing.T) {
	now := time.Now()
	got := EvaluateStreak(model.Streak{
		Current:    5,
		Longest:    5,
		LastActive: now.Add(-30 * time.Hour),
	}, now)

	assert.Equal(t, 6, got.Current)
	assert.Equal(t, 6, got.Longest)
}

func TestEvaluateStreakFreshUserReset(t *testing.T) {
	// A user who registered long ago and never built a streak still ends up
	// with longest >= current after a reset.
	now := time.Now()
	got := EvaluateStreak(model.Streak{LastActive: now.Add(-100 * time.Hour)}, now)

	assert.Equal(t, 1, got.Current)
	assert.Equal(t, 1, got.Longest)
}

func TestEvaluateStreakSameDayOnlyMovesLastActive(t *testing.T) {
	now := time.Now()
	before := model.Streak{Current: 2, Longest: 4, LastActive: now.Add(-2 * time.Hour)}

	got := EvaluateStreak(before, now)

	assert.Equal(t, before.Current, got.Current)
	assert.Equal(t, before.Longest, got.Longest)
	assert.Equal(t, now, got.LastActive)
}
