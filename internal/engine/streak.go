package engine

import (
	"time"

	"learnbotx_backend/internal/model"
)

// EvaluateStreak applies one qualifying activity event (a login) at now.
//
// The boundaries are deliberate and strict: exactly 24h since the last
// activity still counts as the same day (no change), exactly 48h is a miss
// (reset to 1). Only the open interval (24h, 48h) extends the streak.
// lastActive always moves to now.
func EvaluateStreak(s model.Streak, now time.Time) model.Streak {
	hours := now.Sub(s.LastActive).Hours()

	switch {
	case hours > 24 && hours < 48:
		s.Current++
	case hours >= 48:
		s.Current = 1
	}

	// Longest is a high-water mark and must never trail current, including
	// after a reset for a user whose longest was still zero.
	if s.Current > s.Longest {
		s.Longest = s.Current
	}

	s.LastActive = now
	return s
}
