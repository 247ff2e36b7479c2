package engine

import (
	"fmt"
	"time"

	"learnbotx_backend/internal/model"
)

// StepUpdate carries one progress/lesson event for a single step. Both
// fields are optional; nil means "leave alone".
type StepUpdate struct {
	Progress *int
	LessonID *int
}

// XPAward reports a step completion so the caller can persist it.
type XPAward struct {
	StepID   uint `json:"stepId"`
	XPGained int  `json:"xpGained"`
}

// StepXP is the completion bonus for the step at zero-based index i.
// Later steps pay more.
func StepXP(index int) int {
	return 50 + 25*index
}

// UpdateStep applies a progress update and/or lesson completion to the step
// with the given stepId, then runs the completion cascade: at 100% a
// not-yet-completed step flips to completed, earns XP onto path.TotalXP and
// unlocks the next locked step. Repeat 100% submissions are no-ops on
// status and XP.
//
// The award is nil when no completion happened this call. The only error is
// ErrStepNotFound, returned before anything is mutated.
func UpdateStep(path *model.LearningPath, stepID uint, upd StepUpdate, now time.Time) (*XPAward, error) {
	idx := -1
	for i := range path.Steps {
		if path.Steps[i].StepID == stepID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("step %d: %w", stepID, ErrStepNotFound)
	}
	step := &path.Steps[idx]

	if upd.Progress != nil {
		p := *upd.Progress
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		step.Progress = p
	}

	// Lesson completions are a set: duplicates are silently ignored.
	if upd.LessonID != nil && !hasLesson(step, *upd.LessonID) {
		step.CompletedLessons = append(step.CompletedLessons, model.CompletedLesson{
			StepRowID:   step.ID,
			LessonID:    *upd.LessonID,
			CompletedAt: now,
		})
	}

	if step.Progress < 100 || step.Status == model.StepCompleted {
		return nil, nil
	}

	step.Status = model.StepCompleted
	completedAt := now
	step.CompletedAt = &completedAt

	award := &XPAward{StepID: step.StepID, XPGained: StepXP(idx)}
	path.TotalXP += award.XPGained

	if next := idx + 1; next < len(path.Steps) {
		ns := &path.Steps[next]
		if ns.Status == model.StepLocked {
			ns.Status = model.StepCurrent
			startedAt := now
			ns.StartedAt = &startedAt
		}
	}

	return award, nil
}

func hasLesson(step *model.LearningStep, lessonID int) bool {
	for _, l := range step.CompletedLessons {
		if l.LessonID == lessonID {
			return true
		}
	}
	return false
}
