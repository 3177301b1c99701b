package auth

import (
	"context"
	"errors"
	"strings"
)

type contextKey struct{}

var tokenKey contextKey

// WithToken returns a context carrying the presented bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext extracts the bearer token stored by the transport.
// Returns the empty string when no token was presented.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// ExtractBearer parses an Authorization header value and returns the
// bearer token it carries.
func ExtractBearer(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing authorization header")
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(header, prefix)
	if token == "" {
		return "", errors.New("empty token")
	}
	return token, nil
}
