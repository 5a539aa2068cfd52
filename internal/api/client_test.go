package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/session"
)

func TestGet_TokenPropagation(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":{"ok":true},"message":"","status":true,"statusCode":200}`))
	}))
	defer server.Close()

	tokens := session.NewMemoryStore()
	client := NewClient(server.URL, tokens, nil)

	// No token yet: no Authorization header.
	_, err := Get[map[string]bool](context.Background(), client, "/ping")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	// A token written to the store is visible to the very next call, no
	// client rebuild needed.
	require.NoError(t, tokens.Set("abc"))
	_, err = Get[map[string]bool](context.Background(), client, "/ping")
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth)

	require.NoError(t, tokens.Clear())
	_, err = Get[map[string]bool](context.Background(), client, "/ping")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestGet_RequestHeaders(t *testing.T) {
	var accept, requestID, contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		requestID = r.Header.Get("X-Request-ID")
		contentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"data":null}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, session.NewMemoryStore(), nil)

	_, err := Get[any](context.Background(), client, "/x")
	require.NoError(t, err)
	assert.Equal(t, "application/json", accept)
	assert.NotEmpty(t, requestID)
	assert.Empty(t, contentType, "GET carries no body, so no Content-Type")

	_, err = Post[any](context.Background(), client, "/x", map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
}

func TestGet_ServerMessageSurfacedVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials","statusCode":401}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, session.NewMemoryStore(), nil)

	_, err := Post[any](context.Background(), client, "/auth/sign-in", map[string]string{})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestGet_SynthesizedMessageWhenBodyUnparseable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, session.NewMemoryStore(), nil)

	_, err := Get[any](context.Background(), client, "/books")
	require.Error(t, err)
	assert.Equal(t, "Request failed with status 502", err.Error())
}

func TestGet_SuccessWithUnparseableBodyFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewClient(server.URL, session.NewMemoryStore(), nil)

	_, err := Get[any](context.Background(), client, "/books")
	assert.Error(t, err)
}

func TestGet_EnvelopeDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"b1","title":"Dune"},"message":"ok","path":"/books/b1","status":true,"statusCode":200,"timestamp":"2025-01-01T00:00:00Z"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, session.NewMemoryStore(), nil)

	type book struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	resp, err := Get[book](context.Background(), client, "/books/b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", resp.Data.ID)
	assert.Equal(t, "Dune", resp.Data.Title)
	assert.Equal(t, "ok", resp.Message)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Book not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, session.NewMemoryStore(), nil)

	_, err := Get[any](context.Background(), client, "/books/missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Book not found", err.Error())

	server.Close()
	_, err = Get[any](context.Background(), client, "/books/missing")
	require.Error(t, err)
	assert.False(t, IsNotFound(err), "network errors are not NotFound")
}
