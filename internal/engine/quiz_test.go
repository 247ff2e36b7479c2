package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordQuiz(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	path := NewPath(1, testTemplate, now)

	xp, pct, err := RecordQuiz(path, QuizAttempt{
		QuizID:         "js-basics-1",
		Topic:          "javascript",
		Score:          4,
		TotalQuestions: 5,
	}, now)

	require.NoError(t, err)
	assert.Equal(t, 40, xp)
	assert.Equal(t, 80, pct)
	assert.Equal(t, 40, path.TotalXP)

	require.Len(t, path.Quizzes, 1)
	assert.Equal(t, "js-basics-1", path.Quizzes[0].QuizID)
	assert.Equal(t, now, path.Quizzes[0].CompletedAt)
}

func TestRecordQuizZeroQuestions(t *testing.T) {
	path := NewPath(1, testTemplate, time.Now())

	_, _, err := RecordQuiz(path, QuizAttempt{Score: 0, TotalQuestions: 0}, time.Now())

	assert.ErrorIs(t, err, ErrInvalidQuiz)
	assert.Empty(t, path.Quizzes)
	assert.Equal(t, 0, path.TotalXP)
}

func TestRecordQuizScoreOutOfRange(t *testing.T) {
	path := NewPath(1, testTemplate, time.Now())

	tests := []struct {
		name  string
		score int
		total int
	}{
		{"negative score", -1, 5},
		{"score above total", 6, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := RecordQuiz(path, QuizAttempt{Score: tt.score, TotalQuestions: tt.total}, time.Now())
			assert.ErrorIs(t, err, ErrInvalidQuiz)
		})
	}
	assert.Empty(t, path.Quizzes)
}

func TestRecordQuizAppendOnly(t *testing.T) {
	path := NewPath(1, testTemplate, time.Now())

	// Same quizId recorded twice: the ledger keeps both.
	for i := 0; i < 2; i++ {
		_, _, err := RecordQuiz(path, QuizAttempt{QuizID: "repeat", Score: 3, TotalQuestions: 4}, time.Now())
		require.NoError(t, err)
	}

	assert.Len(t, path.Quizzes, 2)
	assert.Equal(t, 60, path.TotalXP)
}

func TestRecordQuizPerfectAndZeroScores(t *testing.T) {
	path := NewPath(1, testTemplate, time.Now())

	xp, pct, err := RecordQuiz(path, QuizAttempt{Score: 5, TotalQuestions: 5}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 50, xp)
	assert.Equal(t, 100, pct)

	xp, pct, err = RecordQuiz(path, QuizAttempt{Score: 0, TotalQuestions: 5}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, xp)
	assert.Equal(t, 0, pct)
}

func TestRecordQuizPercentageRounds(t *testing.T) {
	path := NewPath(1, testTemplate, time.Now())

	_, pct, err := RecordQuiz(path, QuizAttempt{Score: 1, TotalQuestions: 3}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 33, pct)

	_, pct, err = RecordQuiz(path, QuizAttempt{Score: 2, TotalQuestions: 3}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 67, pct)
}
