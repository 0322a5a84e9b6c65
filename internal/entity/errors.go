package entity

import "errors"

// Domain errors
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// Input errors
	ErrEmptyUtterance = errors.New("utterance must not be empty")

	// Plan errors
	ErrUnknownPlan = errors.New("unknown question plan")
	ErrEmptyPlan   = errors.New("question plan has no questions")

	// Validation errors
	ErrMissingField  = errors.New("required field is missing")
	ErrInvalidFormat = errors.New("invalid format")
)
