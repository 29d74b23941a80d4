package domain

import "errors"

// Sentinel errors used throughout the application.
var (
	ErrInvalidPort = errors.New("invalid port: must be an integer between 1 and 65535")
)
