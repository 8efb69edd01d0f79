package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims(username string) Claims {
	now := time.Now()
	return Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

// echoUser writes the username found in the context, or "-".
var echoUser = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	u, ok := Username(r.Context())
	if !ok {
		u = "-"
	}
	_, _ = w.Write([]byte(u))
})

func TestJWT(t *testing.T) {
	t.Parallel()

	auth := NewAuthenticator(testSecret, discard())
	h := auth.JWT(echoUser)

	subjectOnly := validClaims("")
	subjectOnly.Subject = "inspector2"

	expired := validClaims("inspector1")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	cases := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{"valid", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("inspector1")), http.StatusOK, "inspector1"},
		{"subject fallback", "bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), subjectOnly), http.StatusOK, "inspector2"},
		{"missing", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Token abc", http.StatusUnauthorized, ""},
		{"wrong secret", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims("inspector1")), http.StatusUnauthorized, ""},
		{"wrong algorithm", "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims("inspector1")), http.StatusUnauthorized, ""},
		{"expired", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired), http.StatusUnauthorized, ""},
		{"no identity", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("")), http.StatusUnauthorized, ""},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/incidents/1/", nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, c.code, rr.Code)
			if c.code == http.StatusOK {
				assert.Equal(t, c.body, rr.Body.String())
			} else {
				assert.Contains(t, rr.Body.String(), `"error":"unauthorized"`)
			}
		})
	}
}

func TestOptionalJWT(t *testing.T) {
	t.Parallel()

	auth := NewAuthenticator(testSecret, discard())
	h := auth.OptionalJWT(echoUser)

	expired := validClaims("inspector1")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	cases := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{"anonymous", "", http.StatusOK, "-"},
		{"valid", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("inspector1")), http.StatusOK, "inspector1"},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized, ""},
		{"expired token", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired), http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, ""},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/", nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, c.code, rr.Code)
			if c.code == http.StatusOK {
				assert.Equal(t, c.body, rr.Body.String())
			} else {
				assert.Contains(t, rr.Body.String(), `"error":"unauthorized"`)
			}
		})
	}
}
