package domain

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable is returned when every upstream tier failed and no cached value exists.
	ErrUnavailable = errors.New("service unavailable")
	// ErrUnknownSite is returned when a site name has no known coordinates.
	ErrUnknownSite = errors.New("unknown site")
)
