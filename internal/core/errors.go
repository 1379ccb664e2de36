package core

import "errors"

var (
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidSource     = errors.New("invalid source")
	ErrInvalidImportance = errors.New("importance out of range")
	ErrInvalidMemory     = errors.New("invalid memory")

	// ErrSourceUnavailable is returned when the backing memory store cannot be reached.
	ErrSourceUnavailable = errors.New("memory source unavailable")

	ErrNotImplemented = errors.New("not implemented")
	ErrUnknownAction  = errors.New("unknown action")
)
