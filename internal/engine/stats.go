package engine

import (
	"learnbotx_backend/internal/model"
)

// Stats is the read-only summary shown on the dashboard.
// swagger:model Stats
type Stats struct {
	XP              int           `json:"xp"`
	Streak          model.Streak  `json:"streak"`
	Badges          []model.Badge `json:"badges"`
	OverallProgress int           `json:"overallProgress"`
	CompletedSteps  int           `json:"completedSteps"`
	TotalSteps      int           `json:"totalSteps"`
	AvgQuizScore    int           `json:"avgQuizScore"`
	LastQuizScore   int           `json:"lastQuizScore"`
	TotalQuizzes    int           `json:"totalQuizzes"`
}

// ComputeStats derives display statistics from a path and its owner's
// streak/badges. Pure; safe on an empty quiz history.
func ComputeStats(path *model.LearningPath, streak model.Streak, badges []model.Badge) Stats {
	stats := Stats{
		XP:           path.TotalXP,
		Streak:       streak,
		Badges:       badges,
		TotalSteps:   len(path.Steps),
		TotalQuizzes: len(path.Quizzes),
	}
	if stats.Badges == nil {
		stats.Badges = []model.Badge{}
	}

	for _, s := range path.Steps {
		if s.Status == model.StepCompleted {
			stats.CompletedSteps++
		}
	}
	if stats.TotalSteps > 0 {
		stats.OverallProgress = percent(stats.CompletedSteps, stats.TotalSteps)
	}

	if len(path.Quizzes) > 0 {
		sum := 0
		for _, q := range path.Quizzes {
			sum += percent(q.Score, q.TotalQuestions)
		}
		stats.AvgQuizScore = (sum + len(path.Quizzes)/2) / len(path.Quizzes)

		last := path.Quizzes[len(path.Quizzes)-1]
		stats.LastQuizScore = percent(last.Score, last.TotalQuestions)
	}

	return stats
}
