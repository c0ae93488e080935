package domain

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")

	// ErrProvider marks embedding-provider failures (network, quota,
	// rejected input). Interactive search propagates it; the maintenance
	// job catches it per creator and continues.
	ErrProvider = errors.New("embedding provider failure")

	// ErrSchema marks an embedding column or ANN index in an unexpected
	// state. Fatal during bootstrap.
	ErrSchema = errors.New("vector schema in unexpected state")

	// ErrData marks a stored creator row that cannot be decoded into the
	// read model, such as malformed pricing JSONB.
	ErrData = errors.New("creator data malformed")

	// ErrDependencyUnavailable marks a collaborator that failed its
	// startup check, such as the redis ping.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
