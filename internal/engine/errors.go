package engine

import "errors"

var (
	ErrStepNotFound = errors.New("step not found")
	ErrInvalidQuiz  = errors.New("invalid quiz result")
)
