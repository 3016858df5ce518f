package utils

import "errors"

var (
	// generation pipeline
	ErrMissingCredential = errors.New("generation credential is not configured")
	ErrUpstreamError     = errors.New("generation service request failed")
	ErrMalformedEnvelope = errors.New("generation service returned an unexpected response shape")
	ErrInvalidPlanJSON   = errors.New("the model produced an invalid result")

	// map capability
	ErrAcquisitionFailed = errors.New("map capability failed to load")
	ErrMapSessionGone    = errors.New("map session not found")
	ErrMapNotReady       = errors.New("map surface is not ready")

	// shared plumbing
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrEmailTaken      = errors.New("email already registered")
	ErrAccountNotFound = errors.New("account not found")
	ErrTripNotFound    = errors.New("trip not found")
	ErrExpenseNotFound = errors.New("expense not found")
	ErrDatabaseError   = errors.New("database error")
)
