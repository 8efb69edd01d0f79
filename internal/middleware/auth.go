package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mariomediam/maps-backend/internal/render"
)

type ctxKey int

const usernameKey ctxKey = iota

// Claims is the access token issued by the identity service. Username falls
// back to the subject when the token carries no username claim.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (c *Claims) user() string {
	if c.Username != "" {
		return c.Username
	}
	return c.Subject
}

// Authenticator validates HS256 bearer tokens.
type Authenticator struct {
	secret []byte
	logger *slog.Logger
}

func NewAuthenticator(secret string, logger *slog.Logger) *Authenticator {
	return &Authenticator{secret: []byte(secret), logger: logger}
}

var errNoToken = errors.New("missing bearer token")

func (a *Authenticator) parse(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errNoToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.user() == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.user(), nil
}

// JWT rejects requests without a valid bearer token.
func (a *Authenticator) JWT(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := a.parse(r)
		if err != nil {
			a.logger.Warn("unauthorized request", slog.String("path", r.URL.Path), slog.String("reason", err.Error()))
			render.Error(w, http.StatusUnauthorized, "unauthorized", "Authentication credentials were not provided or are invalid")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUsername(r.Context(), username)))
	})
}

// OptionalJWT lets anonymous requests through and attaches the username when
// a valid token is present. A token that is sent but fails validation is
// rejected like in JWT, so an expired inspector session is never filed as a
// citizen submission.
func (a *Authenticator) OptionalJWT(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := a.parse(r)
		if errors.Is(err, errNoToken) {
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			a.logger.Warn("invalid optional token", slog.String("path", r.URL.Path), slog.String("reason", err.Error()))
			render.Error(w, http.StatusUnauthorized, "unauthorized", "Authentication credentials are invalid or expired")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUsername(r.Context(), username)))
	})
}

func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// Username returns the authenticated username, if any.
func Username(ctx context.Context) (string, bool) {
	u, ok := ctx.Value(usernameKey).(string)
	return u, ok && u != ""
}
