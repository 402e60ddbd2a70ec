package auth

import (
	"errors"
	"time"
)

// ErrInvalidToken is returned for malformed, tampered or expired tokens.
var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues and verifies session tokens bound to an account ID.
type Strategy interface {
	IssueToken(accountID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options configures token lifetime for every Strategy.
type Options struct {
	// TTL is how long an issued token stays valid; zero means 24h.
	TTL time.Duration
	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}

const defaultTTL = 24 * time.Hour

func (o Options) normalize() Options {
	if o.TTL <= 0 {
		o.TTL = defaultTTL
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
