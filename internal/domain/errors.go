package domain

import "errors"

var (
	ErrDuplicateProfile = errors.New("game profile already registered")
	ErrUnknownGame      = errors.New("unknown game")
	ErrUnknownTable     = errors.New("unknown subsystem table")
	ErrGameNotFound     = errors.New("game not configured")
	ErrPackageNotFound  = errors.New("package not installed")
	ErrFomodNotFound    = errors.New("no fomod installer found")
	ErrAuthRequired     = errors.New("authentication required")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrLinkFailed       = errors.New("link operation failed")
	ErrCancelled        = errors.New("cancelled")
)
