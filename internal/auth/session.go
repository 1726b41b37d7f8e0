package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionCookie is the name of the session cookie issued on login.
const SessionCookie = "gc_session"

// PrincipalKind distinguishes customer sessions from back-office sessions.
type PrincipalKind string

const (
	KindUser  PrincipalKind = "user"
	KindAdmin PrincipalKind = "admin"
)

// Principal identifies the authenticated caller of a request. Exactly one of
// UserID and AdminID is meaningful, depending on Kind.
type Principal struct {
	Kind    PrincipalKind
	UserID  string
	AdminID int
}

type session struct {
	principal Principal
	expiresAt time.Time
}

// SessionStore issues and resolves opaque session tokens. Sessions live in
// memory; a restart logs everyone out.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]session
	ttl      time.Duration
	logger   zerolog.Logger
}

// NewSessionStore creates a session store with the given token lifetime.
func NewSessionStore(ttl time.Duration, logger zerolog.Logger) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]session),
		ttl:      ttl,
		logger:   logger.With().Str("component", "sessions").Logger(),
	}
}

// Create issues a new token for the principal.
func (s *SessionStore) Create(p Principal) string {
	token := uuid.New().String()

	s.mu.Lock()
	s.sessions[token] = session{
		principal: p,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()

	s.logger.Debug().Str("kind", string(p.Kind)).Msg("session created")
	return token
}

// Resolve returns the principal for a token, or false when the token is
// unknown or expired. Expired tokens are removed lazily.
func (s *SessionStore) Resolve(token string) (Principal, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return Principal{}, false
	}
	if time.Now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return Principal{}, false
	}
	return sess.principal, true
}

// Destroy invalidates a token. Unknown tokens are a no-op.
func (s *SessionStore) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// StartCleanup sweeps expired sessions until ctx is cancelled.
func (s *SessionStore) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *SessionStore) sweep() {
	now := time.Now()
	removed := 0

	s.mu.Lock()
	for token, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("expired sessions swept")
	}
}

type principalKey struct{}

// WithPrincipal stores the principal in the request context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom extracts the principal from the request context, if any.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
