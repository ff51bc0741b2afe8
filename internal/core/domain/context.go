package domain

import "context"

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s. The backend client reads the
// bearer token from it, and the 401 hook uses it to find what to invalidate.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session attached by WithSession, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}
