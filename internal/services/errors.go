package services

import "errors"

// Process service errors.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrHeaderRowHigh = errors.New("header row exceeds the configured maximum")
)
