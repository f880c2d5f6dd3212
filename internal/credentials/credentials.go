// Package credentials manages the bearer token the client presents to
// the ticketing API. It is the Go analog of the browser cookie the web
// frontend uses: the token lives in external storage, survives process
// restarts, and is read fresh on every access so that a logout or
// token change made elsewhere is observed immediately.
package credentials

import "errors"

// ErrNoToken is returned by Token when no credential is stored.
// Callers treating the session as anonymous should check for it with
// errors.Is rather than comparing strings.
var ErrNoToken = errors.New("no token stored")

// Store holds the bearer credential. Implementations must read backing
// storage on every Token call instead of caching, so the authentication
// state never goes stale after an external mutation.
type Store interface {
	// Token returns the stored bearer token, or ErrNoToken if absent.
	Token() (string, error)
	// SetToken persists the bearer token.
	SetToken(token string) error
	// Clear removes the stored token. Clearing an empty store is not
	// an error.
	Clear() error
	// HasToken reports whether a token is currently stored.
	HasToken() bool
}
