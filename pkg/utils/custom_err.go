package utils

import "errors"

// Sentinel errors returned by services. Controllers translate them to HTTP
// responses in HandleServiceError; each NotFound cause keeps its own message
// because each implies a different corrective action for the caller.
var (
	ErrCityNotFound         = errors.New("city not found")
	ErrTravelNotFound       = errors.New("travel not found")
	ErrRouteLegNotFound     = errors.New("route leg not found")
	ErrRouteEmpty           = errors.New("route is empty")
	ErrCityNotOnRoute       = errors.New("city not found in route")
	ErrDirectoryLegNotFound = errors.New("no directory leg for city pair and transport")
	ErrNoRouteBetweenCities = errors.New("no route between the two cities")

	ErrEntertainmentNotFound = errors.New("entertainment not found")
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrUserNotFound          = errors.New("user not found")

	ErrInvariantViolation      = errors.New("invariant violation")
	ErrInvalidInput            = errors.New("invalid input")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrAlreadyJoined           = errors.New("user already joined this travel")
	ErrEmailAlreadyExists      = errors.New("email already registered")
	ErrDuplicateEntry          = errors.New("duplicate entry")
	ErrInvalidCredentials      = errors.New("invalid credentials")

	ErrDatabaseError = errors.New("database error")
)
