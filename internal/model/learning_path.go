package model

import (
	"time"
)

type StepStatus string

const (
	StepLocked    StepStatus = "locked"
	StepCurrent   StepStatus = "current"
	StepCompleted StepStatus = "completed"
)

// LearningPath is the per-user gamification aggregate. TotalXP is the single
// source of truth for a user's XP; nothing else stores it.
// swagger:model LearningPath
type LearningPath struct {
	BaseModel
	UserID       uint           `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	CurrentTopic string         `gorm:"size:100;default:'javascript-fundamentals'" json:"currentTopic"`
	TotalXP      int            `gorm:"default:0" json:"totalXP"`
	Steps        []LearningStep `gorm:"foreignKey:PathID" json:"learningPath"`
	Quizzes      []QuizResult   `gorm:"foreignKey:PathID" json:"quizzes"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}

// LearningStep lifecycle: locked -> current -> completed, completed terminal.
type LearningStep struct {
	BaseModel
	PathID           uint              `gorm:"index;type:bigint unsigned;not null" json:"-"`
	StepID           uint              `gorm:"not null" json:"stepId"`
	Title            string            `gorm:"size:100" json:"title"`
	Status           StepStatus        `gorm:"type:enum('locked','current','completed');default:'locked'" json:"status"`
	Progress         int               `gorm:"default:0" json:"progress"`
	CompletedLessons []CompletedLesson `gorm:"foreignKey:StepRowID" json:"completedLessons"`
	StartedAt        *time.Time        `json:"startedAt,omitempty"`
	CompletedAt      *time.Time        `json:"completedAt,omitempty"`
}

func (LearningStep) TableName() string {
	return "learning_steps"
}

type CompletedLesson struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	StepRowID   uint      `gorm:"index:idx_step_lesson,unique;type:bigint unsigned;not null" json:"-"`
	LessonID    int       `gorm:"index:idx_step_lesson,unique;not null" json:"lessonId"`
	CompletedAt time.Time `json:"completedAt"`
}

func (CompletedLesson) TableName() string {
	return "completed_lessons"
}

// QuizResult is append-only quiz history on a path.
type QuizResult struct {
	BaseModel
	PathID         uint      `gorm:"index;type:bigint unsigned;not null" json:"-"`
	QuizID         string    `gorm:"size:100" json:"quizId"`
	Topic          string    `gorm:"size:100" json:"topic"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`
	CompletedAt    time.Time `json:"completedAt"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
