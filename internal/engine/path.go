package engine

import (
	"time"

	"learnbotx_backend/internal/model"
)

// StepTemplate is one entry of the seed curriculum. The engine treats the
// template length as data; six steps is a product choice, not a constant.
type StepTemplate struct {
	StepID uint
	Title  string
}

// NewPath seeds a fresh learning path from the template: the first step is
// current, everything after it locked.
func NewPath(userID uint, template []StepTemplate, now time.Time) *model.LearningPath {
	steps := make([]model.LearningStep, len(template))
	for i, t := range template {
		steps[i] = model.LearningStep{
			StepID: t.StepID,
			Title:  t.Title,
			Status: model.StepLocked,
		}
		if i == 0 {
			steps[i].Status = model.StepCurrent
		}
	}

	return &model.LearningPath{
		UserID:       userID,
		CurrentTopic: "javascript-fundamentals",
		Steps:        steps,
		Quizzes:      []model.QuizResult{},
		BaseModel:    model.BaseModel{CreatedAt: now, UpdatedAt: now},
	}
}
