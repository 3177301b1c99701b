package auth

import (
	"crypto/subtle"
	"errors"
)

// ErrUnauthorized is returned for any credential that does not exactly
// match the configured token, including an empty one.
var ErrUnauthorized = errors.New("unauthorized")

// Credentials holds the process-wide secrets loaded once at startup.
// CallerNumber identifies the deploying caller to the upstream platform;
// it is advertised by the validate tool and plays no part in per-request
// authorization.
type Credentials struct {
	AuthToken    string
	CallerNumber string
}

// Guard validates bearer credentials on inbound invocations. It is
// stateless and safe for concurrent use.
type Guard struct {
	token string
}

// NewGuard creates a Guard that accepts exactly the given token.
func NewGuard(token string) *Guard {
	return &Guard{token: token}
}

// Authorize checks the presented token against the configured one.
// Comparison is constant-time since this guards the entire surface.
func (g *Guard) Authorize(presented string) error {
	if presented == "" {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(g.token)) != 1 {
		return ErrUnauthorized
	}
	return nil
}
