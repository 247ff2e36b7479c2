package engine

import (
	"fmt"
	"math"
	"time"

	"learnbotx_backend/internal/model"
)

// QuizAttempt is one submitted quiz. The engine does not dedup by QuizID;
// idempotency, if wanted, is the caller's problem.
type QuizAttempt struct {
	QuizID         string
	Topic          string
	Score          int
	TotalQuestions int
}

// RecordQuiz validates the attempt, appends it to the path's quiz history
// and pays 10 XP per correct answer. Nothing is mutated on error.
func RecordQuiz(path *model.LearningPath, att QuizAttempt, now time.Time) (xpGained, percentage int, err error) {
	if att.TotalQuestions <= 0 {
		return 0, 0, fmt.Errorf("totalQuestions must be positive, got %d: %w", att.TotalQuestions, ErrInvalidQuiz)
	}
	if att.Score < 0 || att.Score > att.TotalQuestions {
		return 0, 0, fmt.Errorf("score %d out of range [0,%d]: %w", att.Score, att.TotalQuestions, ErrInvalidQuiz)
	}

	path.Quizzes = append(path.Quizzes, model.QuizResult{
		PathID:         path.ID,
		QuizID:         att.QuizID,
		Topic:          att.Topic,
		Score:          att.Score,
		TotalQuestions: att.TotalQuestions,
		CompletedAt:    now,
	})

	xpGained = att.Score * 10
	path.TotalXP += xpGained

	return xpGained, percent(att.Score, att.TotalQuestions), nil
}

func percent(score, total int) int {
	return int(math.Round(float64(score) / float64(total) * 100))
}
