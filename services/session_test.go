package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Flicks/config"
)

func TestSessionStore_FlashRoundTrip(t *testing.T) {
	store := NewSessionStore(&config.Config{SessionSecret: "test-secret", Environment: "development"})

	// Request 1 sets the flash.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/favorites/add", nil)
	require.NoError(t, store.AddFlash(rec, req, "Added Heat to favorites!"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.True(t, cookies[0].HttpOnly)
	assert.False(t, cookies[0].Secure)

	// Request 2 consumes it.
	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}
	assert.Equal(t, []string{"Added Heat to favorites!"}, store.Flashes(rec2, req2))

	// Request 3 with the rewritten cookie sees nothing.
	req3 := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec2.Result().Cookies() {
		req3.AddCookie(c)
	}
	assert.Empty(t, store.Flashes(httptest.NewRecorder(), req3))
}

func TestSessionStore_NoCookie(t *testing.T) {
	store := NewSessionStore(&config.Config{SessionSecret: "test-secret"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, store.Flashes(httptest.NewRecorder(), req))
}

func TestSessionStore_SecureInProduction(t *testing.T) {
	store := NewSessionStore(&config.Config{SessionSecret: "test-secret", Environment: "production"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, store.AddFlash(rec, req, "hello"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.True(t, cookies[0].Secure)
}
