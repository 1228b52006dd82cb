package service

import "errors"

// Sentinel errors raised by the service layer. The HTTP layer maps each
// to a status code with errors.Is; no endpoint invents its own shape.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyCompleted   = errors.New("chore already completed")
	ErrAlreadyApproved    = errors.New("redemption already approved")
	ErrInsufficientPoints = errors.New("not enough points")
	ErrValidation         = errors.New("invalid input")
)
