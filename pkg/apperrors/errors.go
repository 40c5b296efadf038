package apperrors

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrNotConnected = errors.New("warehouse not connected")
	ErrMissingLabel = errors.New("expected label not found in suggestion text")
	ErrSuspectInput = errors.New("input rejected by injection screening")
)
