package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amriteshrai/portfolio-backend/config"
)

type fakeMailer struct {
	sent []Message
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, msg Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newContactRouter(m Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(m, zap.NewNop()).Register(r.Group("/api"))
	return r
}

func post(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req, err := http.NewRequest("POST", "/api/contact", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestContact_Success(t *testing.T) {
	mailer := &fakeMailer{}
	r := newContactRouter(mailer)

	rr := post(t, r, gin.H{
		"name":    "Jane",
		"email":   "jane@example.com",
		"message": "Hi there",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Jane", mailer.sent[0].Name)
	assert.Equal(t, "Hi there", mailer.sent[0].Body)
}

func TestContact_MissingMessage(t *testing.T) {
	mailer := &fakeMailer{}
	r := newContactRouter(mailer)

	rr := post(t, r, gin.H{
		"name":  "Jane",
		"email": "jane@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, mailer.sent, "mailer must not be invoked on invalid input")
}

func TestContact_DispatchFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp: connection refused")}
	r := newContactRouter(mailer)

	rr := post(t, r, gin.H{
		"name":    "Jane",
		"email":   "jane@example.com",
		"message": "Hi",
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestContact_NotConfigured(t *testing.T) {
	// no SMTP credentials in config
	mailer := NewSMTPMailer(config.MailConfig{})
	r := newContactRouter(mailer)

	rr := post(t, r, gin.H{
		"name":    "Jane",
		"email":   "jane@example.com",
		"message": "Hi",
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Server configuration error")
}
