package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoteNotFound       = errors.New("note not found")
	ErrChatNotFound       = errors.New("chat not found")
)
