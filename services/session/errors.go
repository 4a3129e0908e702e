package session

import "errors"

var (
	// ErrIdentityNotFound signals a login against an id the data layer
	// does not know for the requested role.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrInvalidRole signals an unrecognized role tag.
	ErrInvalidRole = errors.New("invalid role")

	// ErrSessionNotFound is the store's sentinel for an absent record.
	ErrSessionNotFound = errors.New("session not found")
)
