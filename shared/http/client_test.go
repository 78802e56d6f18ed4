package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRequest_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"name":"ok"}`))
	}))
	defer srv.Close()

	resp, err := MakeRequest(context.Background(), srv.URL, nil)
	require.NoError(t, err)

	var body struct {
		Name string `json:"name"`
	}
	require.NoError(t, DecodeJSONResponse(resp, &body))
	assert.Equal(t, "ok", body.Name)
}

func TestMakeRequest_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	resp, err := MakeRequest(context.Background(), srv.URL, srv.Client())
	assert.Nil(t, resp)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestDecodeJSONResponse_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":`))
	}))
	defer srv.Close()

	resp, err := MakeRequest(context.Background(), srv.URL, nil)
	require.NoError(t, err)

	var v map[string]any
	assert.Error(t, DecodeJSONResponse(resp, &v))
}

func TestBuildQueryURL(t *testing.T) {
	got, err := BuildQueryURL("https://example.com/3/movie/popular?page=2", url.Values{
		"api_key":  {"k"},
		"language": {"en-US"},
	})
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "/3/movie/popular", u.Path)
	assert.Equal(t, "2", u.Query().Get("page"))
	assert.Equal(t, "k", u.Query().Get("api_key"))
	assert.Equal(t, "en-US", u.Query().Get("language"))
}
