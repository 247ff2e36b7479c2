package engine

import (
	"testing"
	"time"

	"learnbotx_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStatsEmptyHistory(t *testing.T) {
	path := NewPath(1, testTemplate, time.Now())

	stats := ComputeStats(path, model.Streak{}, nil)

	assert.Equal(t, 0, stats.AvgQuizScore)
	assert.Equal(t, 0, stats.LastQuizScore)
	assert.Equal(t, 0, stats.TotalQuizzes)
	assert.Equal(t, 0, stats.CompletedSteps)
	assert.Equal(t, 0, stats.OverallProgress)
	assert.Equal(t, 6, stats.TotalSteps)
	assert.NotNil(t, stats.Badges)
}

func TestComputeStatsProgressAndQuizzes(t *testing.T) {
	now := time.Now()
	path := NewPath(1, testTemplate, now)

	for k := 0; k < 2; k++ {
		_, err := UpdateStep(path, path.Steps[k].StepID, StepUpdate{Progress: intPtr(100)}, now)
		require.NoError(t, err)
	}
	_, _, err := RecordQuiz(path, QuizAttempt{Score: 4, TotalQuestions: 5}, now)
	require.NoError(t, err)
	_, _, err = RecordQuiz(path, QuizAttempt{Score: 3, TotalQuestions: 5}, now)
	require.NoError(t, err)

	streak := model.Streak{Current: 3, Longest: 8, LastActive: now}
	badges := []model.Badge{{Code: "first-step", Name: "First Step"}}

	stats := ComputeStats(path, streak, badges)

	assert.Equal(t, path.TotalXP, stats.XP)
	assert.Equal(t, streak, stats.Streak)
	assert.Equal(t, badges, stats.Badges)
	assert.Equal(t, 2, stats.CompletedSteps)
	assert.Equal(t, 33, stats.OverallProgress) // 2 of 6
	assert.Equal(t, 70, stats.AvgQuizScore)    // mean of 80 and 60
	assert.Equal(t, 60, stats.LastQuizScore)
	assert.Equal(t, 2, stats.TotalQuizzes)
}

func TestComputeStatsLastQuizIsMostRecent(t *testing.T) {
	now := time.Now()
	path := NewPath(1, testTemplate, now)

	_, _, err := RecordQuiz(path, QuizAttempt{Score: 1, TotalQuestions: 4}, now)
	require.NoError(t, err)
	_, _, err = RecordQuiz(path, QuizAttempt{Score: 4, TotalQuestions: 4}, now)
	require.NoError(t, err)

	stats := ComputeStats(path, model.Streak{}, nil)
	assert.Equal(t, 100, stats.LastQuizScore)
}
