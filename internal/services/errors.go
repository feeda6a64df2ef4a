// Package services defines the business logic for restaurants, tables, menu
// items, and table sessions. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer. The split between "not found" and "gone"
// matters to clients: an unknown session token is a typo, a gone session
// means re-scan the QR code and join the new session.
package services

import "errors"

// Session lifecycle errors.
var (
	// ErrTableNotFound indicates that no active table carries the provided
	// QR token. Retired and deactivated tables report the same error.
	ErrTableNotFound = errors.New("table not found for provided QR token")

	// ErrRestaurantNotFound indicates that the restaurant record backing a
	// table or request is missing or inactive.
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrSessionNotFound indicates that no session exists for the given
	// token.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionNotActive is returned when a session exists but has already
	// left the active state (checked out or previously expired).
	ErrSessionNotActive = errors.New("session is not active")

	// ErrSessionExpired is returned when the lazy expiry check detects a
	// session whose expiry has passed; the session is transitioned to
	// expired before this error is returned.
	ErrSessionExpired = errors.New("session has expired")

	// ErrInvalidMode is returned when a session mode is outside the allowed
	// set (collective or individual).
	ErrInvalidMode = errors.New("mode must be collective or individual")

	// ErrEmptyParticipantName is returned when a participant name is empty
	// after trimming.
	ErrEmptyParticipantName = errors.New("participant name is empty")
)

// Directory (restaurant/table management) errors.
var (
	// ErrDuplicateSlug indicates that the requested restaurant slug is
	// already taken.
	ErrDuplicateSlug = errors.New("restaurant slug already exists")

	// ErrInvalidSlug is returned when a name or slug cannot be reduced to a
	// non-empty URL-safe slug.
	ErrInvalidSlug = errors.New("invalid slug")

	// ErrDuplicateTableNumber indicates that the restaurant already has a
	// table with the requested number.
	ErrDuplicateTableNumber = errors.New("table number already exists for this restaurant")

	// ErrDuplicateQRToken indicates that an explicitly provided QR token is
	// already bound to another table.
	ErrDuplicateQRToken = errors.New("QR token already exists")

	// ErrMenuItemNotFound indicates that the requested menu item does not
	// exist within the restaurant.
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// IsGone reports whether err represents a session that exists but is no
// longer usable (HTTP 410 class rather than 404).
func IsGone(err error) bool {
	return errors.Is(err, ErrSessionNotActive) || errors.Is(err, ErrSessionExpired)
}
