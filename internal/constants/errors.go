package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrInvalidConfigValue  = errors.New("invalid configuration value")
	ErrUnknownOutputFormat = errors.New("unknown output format (use json, yaml, table or xlsx)")
	ErrOutputFileRequired  = errors.New("--output-file is required for xlsx output")
)

// Input errors.
var (
	ErrInvalidLimit = errors.New("--limit must not be negative")
	ErrImageNeedsID = errors.New("--image requires --id")
)
