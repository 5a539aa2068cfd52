// Package guard gates command execution on session state. Absence of a token
// is a normal state here, not a fault; the sentinel errors exist so callers
// can print a useful hint instead of a stack of wrapping.
package guard

import (
	"errors"

	"bookshelf/internal/session"
)

var (
	ErrNotSignedIn = errors.New("not signed in, run 'bookshelf auth sign-in' first")
	ErrSignedIn    = errors.New("already signed in, run 'bookshelf auth sign-out' first")
)

// RequireSession passes only when a token is present. Used by every command
// that talks to an authenticated endpoint.
func RequireSession(store session.Store) error {
	if store.Get() == "" {
		return ErrNotSignedIn
	}
	return nil
}

// RequireAnonymous passes only when no token is present. Used by sign-in and
// sign-up so a signed-in user does not stack sessions.
func RequireAnonymous(store session.Store) error {
	if store.Get() != "" {
		return ErrSignedIn
	}
	return nil
}
