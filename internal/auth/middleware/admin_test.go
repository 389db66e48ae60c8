package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminEmail = "admin@example.com"

type fakeVerifier struct {
	token *fbauth.Token
	err   error
}

func (f *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error) {
	return f.token, f.err
}

func tokenWithEmail(email string) *fbauth.Token {
	return &fbauth.Token{
		UID:    "uid-123",
		Claims: map[string]interface{}{"email": email},
	}
}

func newGatedRouter(v TokenVerifier, handlerRan *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/blogs", RequireAdmin(v, adminEmail), func(c *gin.Context) {
		*handlerRan = true
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r
}

func do(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest("POST", "/api/blogs", nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRequireAdmin_NoToken(t *testing.T) {
	var handlerRan bool
	r := newGatedRouter(&fakeVerifier{token: tokenWithEmail(adminEmail)}, &handlerRan)

	rr := do(t, r, "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, handlerRan, "handler must not run without a token")
}

func TestRequireAdmin_MalformedHeader(t *testing.T) {
	var handlerRan bool
	r := newGatedRouter(&fakeVerifier{token: tokenWithEmail(adminEmail)}, &handlerRan)

	rr := do(t, r, "Token abc123")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, handlerRan)
}

func TestRequireAdmin_InvalidToken(t *testing.T) {
	var handlerRan bool
	r := newGatedRouter(&fakeVerifier{err: errors.New("expired")}, &handlerRan)

	rr := do(t, r, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, handlerRan)
}

func TestRequireAdmin_WrongEmail(t *testing.T) {
	var handlerRan bool
	r := newGatedRouter(&fakeVerifier{token: tokenWithEmail("someone@else.com")}, &handlerRan)

	rr := do(t, r, "Bearer good-token")

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, handlerRan, "handler must not run for a non-admin identity")
}

func TestRequireAdmin_EmailComparisonIsCaseSensitive(t *testing.T) {
	var handlerRan bool
	r := newGatedRouter(&fakeVerifier{token: tokenWithEmail("Admin@Example.com")}, &handlerRan)

	rr := do(t, r, "Bearer good-token")

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, handlerRan)
}

func TestRequireAdmin_MissingEmailClaim(t *testing.T) {
	var handlerRan bool
	r := newGatedRouter(&fakeVerifier{token: &fbauth.Token{UID: "uid-123"}}, &handlerRan)

	rr := do(t, r, "Bearer good-token")

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, handlerRan)
}

func TestRequireAdmin_Admin(t *testing.T) {
	var handlerRan bool
	r := newGatedRouter(&fakeVerifier{token: tokenWithEmail(adminEmail)}, &handlerRan)

	rr := do(t, r, "Bearer good-token")

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, handlerRan)
}
