package config

import "errors"

var (
	// ErrMissingAccountID is returned before any construct is created when
	// AWS_ACCOUNT_ID is not set.
	ErrMissingAccountID = errors.New("AWS_ACCOUNT_ID environment variable is required")
	// ErrInvalidConfig wraps field-level validation failures.
	ErrInvalidConfig = errors.New("invalid deployment config")
)
