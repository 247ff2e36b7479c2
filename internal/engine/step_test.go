package engine

import (
	"testing"
	"time"

	"learnbotx_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTemplate = []StepTemplate{
	{StepID: 1, Title: "JavaScript Fundamentals"},
	{StepID: 2, Title: "Functions & Scope"},
	{StepID: 3, Title: "Arrays & Objects"},
	{StepID: 4, Title: "Async JavaScript"},
	{StepID: 5, Title: "DOM Manipulation"},
	{StepID: 6, Title: "React Basics"},
}

func intPtr(v int) *int { return &v }

func TestNewPathSeeding(t *testing.T) {
	path := NewPath(7, testTemplate, time.Now())

	require.Len(t, path.Steps, 6)
	assert.Equal(t, model.StepCurrent, path.Steps[0].Status)
	for _, s := range path.Steps[1:] {
		assert.Equal(t, model.StepLocked, s.Status)
	}
	assert.Equal(t, 0, path.TotalXP)
	assert.Equal(t, "javascript-fundamentals", path.CurrentTopic)
}

func TestUpdateStepUnknownStep(t *testing.T) {
	path := NewPath(1, testTemplate, time.Now())

	award, err := UpdateStep(path, 99, StepUpdate{Progress: intPtr(50)}, time.Now())

	assert.Nil(t, award)
	assert.ErrorIs(t, err, ErrStepNotFound)
	assert.Equal(t, 0, path.Steps[0].Progress, "failed call must not mutate")
}

func TestUpdateStepClampsProgress(t *testing.T) {
	path := NewPath(1, testTemplate, time.Now())

	_, err := UpdateStep(path, 2, StepUpdate{Progress: intPtr(-10)}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, path.Steps[1].Progress)

	award, err := UpdateStep(path, 2, StepUpdate{Progress: intPtr(250)}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 100, path.Steps[1].Progress)
	require.NotNil(t, award, "clamped 250 still reaches 100 and completes")
	assert.Equal(t, 75, award.XPGained)
}

func TestUpdateStepCompletionCascade(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	path := NewPath(1, testTemplate, now)

	award, err := UpdateStep(path, 1, StepUpdate{Progress: intPtr(100)}, now)
	require.NoError(t, err)
	require.NotNil(t, award)

	assert.Equal(t, uint(1), award.StepID)
	assert.Equal(t, 50, award.XPGained)
	assert.Equal(t, 50, path.TotalXP)

	first := path.Steps[0]
	assert.Equal(t, model.StepCompleted, first.Status)
	require.NotNil(t, first.CompletedAt)
	assert.Equal(t, now, *first.CompletedAt)

	second := path.Steps[1]
	assert.Equal(t, model.StepCurrent, second.Status)
	require.NotNil(t, second.StartedAt)
	assert.Equal(t, now, *second.StartedAt)

	for _, s := range path.Steps[2:] {
		assert.Equal(t, model.StepLocked, s.Status)
	}
}

func TestUpdateStepCompletionIdempotent(t *testing.T) {
	path := NewPath(1, testTemplate, time.Now())

	first, err := UpdateStep(path, 1, StepUpdate{Progress: intPtr(100)}, time.Now())
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := UpdateStep(path, 1, StepUpdate{Progress: intPtr(100)}, time.Now())
	require.NoError(t, err)
	assert.Nil(t, second, "second 100% submission awards nothing")
	assert.Equal(t, 50, path.TotalXP)
	assert.Equal(t, model.StepCurrent, path.Steps[1].Status)
}

func TestUpdateStepMonotonicUnlock(t *testing.T) {
	path := NewPath(1, testTemplate, time.Now())

	wantXP := 0
	for k := 0; k < 4; k++ {
		award, err := UpdateStep(path, path.Steps[k].StepID, StepUpdate{Progress: intPtr(100)}, time.Now())
		require.NoError(t, err)
		require.NotNil(t, award)
		assert.Equal(t, 50+25*k, award.XPGained)
		wantXP += award.XPGained
	}

	for k := 0; k < 4; k++ {
		assert.Equal(t, model.StepCompleted, path.Steps[k].Status)
	}
	assert.Equal(t, model.StepCurrent, path.Steps[4].Status)
	assert.Equal(t, model.StepLocked, path.Steps[5].Status)
	assert.Equal(t, wantXP, path.TotalXP)
}

func TestUpdateStepLastStepNoCascade(t *testing.T) {
	path := NewPath(1, testTemplate, time.Now())

	award, err := UpdateStep(path, 6, StepUpdate{Progress: intPtr(100)}, time.Now())
	require.NoError(t, err)
	require.NotNil(t, award)
	assert.Equal(t, 50+25*5, award.XPGained)
	assert.Equal(t, model.StepCompleted, path.Steps[5].Status)
}

func TestUpdateStepLessonDedup(t *testing.T) {
	path := NewPath(1, testTemplate, time.Now())

	_, err := UpdateStep(path, 1, StepUpdate{LessonID: intPtr(3)}, time.Now())
	require.NoError(t, err)
	_, err = UpdateStep(path, 1, StepUpdate{LessonID: intPtr(3)}, time.Now())
	require.NoError(t, err)

	require.Len(t, path.Steps[0].CompletedLessons, 1)
	assert.Equal(t, 3, path.Steps[0].CompletedLessons[0].LessonID)
}

func TestUpdateStepDuplicateLessonStillAppliesProgress(t *testing.T) {
	path := NewPath(1, testTemplate, time.Now())

	_, err := UpdateStep(path, 1, StepUpdate{LessonID: intPtr(3), Progress: intPtr(20)}, time.Now())
	require.NoError(t, err)
	_, err = UpdateStep(path, 1, StepUpdate{LessonID: intPtr(3), Progress: intPtr(40)}, time.Now())
	require.NoError(t, err)

	assert.Len(t, path.Steps[0].CompletedLessons, 1)
	assert.Equal(t, 40, path.Steps[0].Progress)
}

func TestStepXPFormula(t *testing.T) {
	assert.Equal(t, 50, StepXP(0))
	assert.Equal(t, 100, StepXP(2))
	assert.Equal(t, 175, StepXP(5))
}
