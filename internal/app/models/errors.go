package models

import "errors"

// Domain specific errors for the upstream yoga-studio API and local guards.
//
// ErrUnauthenticated and ErrNotAuthenticated both render as a 401 but have
// distinct origins: ErrUnauthenticated is the backend rejecting a request's
// credentials or token, ErrNotAuthenticated is raised locally when an
// operation that needs a logged-in user runs against an empty session store,
// before any request is issued.
var (
	ErrNotFound         = errors.New("requested item not found")
	ErrUnauthenticated  = errors.New("authentication required or invalid credentials")
	ErrForbidden        = errors.New("action forbidden")
	ErrValidation       = errors.New("validation failed")
	ErrServerFault      = errors.New("upstream server fault")
	ErrNetwork          = errors.New("upstream unreachable")
	ErrRequestInFlight  = errors.New("a request is already in flight")
	ErrNotAuthenticated = errors.New("no user is logged in")
)
