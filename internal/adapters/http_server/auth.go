package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lucas-palmeida/drivent-3/internal/adapters/observability"
	"github.com/lucas-palmeida/drivent-3/internal/domain"
)

// Authenticator produces an authenticated user identifier from a bearer
// token. Handlers never see tokens; the middleware resolves them and puts the
// user id on the request context.
type Authenticator interface {
	UserIDFromToken(ctx context.Context, token string) (int64, error)
}

var errInvalidToken = errors.New("invalid token")

// SessionAuthenticator verifies the HS256 signature and then requires a live
// session row for the exact token. A signed token whose session was dropped
// at sign-out is rejected.
type SessionAuthenticator struct {
	secret   []byte
	sessions domain.SessionRepository
}

func NewSessionAuthenticator(secret string, sessions domain.SessionRepository) *SessionAuthenticator {
	return &SessionAuthenticator{secret: []byte(secret), sessions: sessions}
}

func (a *SessionAuthenticator) UserIDFromToken(ctx context.Context, token string) (int64, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return a.secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, errInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errInvalidToken
	}
	uid, ok := claims["userId"].(float64)
	if !ok || uid < 1 {
		return 0, errInvalidToken
	}

	sess, err := a.sessions.FindSessionByToken(ctx, token)
	if err != nil {
		return 0, err
	}
	return sess.UserID, nil
}

type ctxKey int

const userIDKey ctxKey = 0

// UserID returns the authenticated user id set by the Auth middleware.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// Auth rejects requests without a valid bearer token backed by a session and
// injects the user id into the request context. Failure bodies are empty; the
// status code is the contract.
func Auth(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				observability.ObserveAuthRejection("missing")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			raw := strings.TrimPrefix(h, "Bearer ")

			uid, err := a.UserIDFromToken(r.Context(), raw)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					observability.ObserveAuthRejection("session")
				} else {
					observability.ObserveAuthRejection("invalid")
				}
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, uid)))
		})
	}
}
