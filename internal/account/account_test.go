package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/api"
	"bookshelf/internal/session"
)

func newAuthBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	handler := func(w http.ResponseWriter, r *http.Request) {
		var creds Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)

		w.Header().Set("Content-Type", "application/json")
		if creds.Password != "correct" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"message": "Invalid credentials", "statusCode": 401})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data":       map[string]string{"access_token": "token-for-" + creds.Email},
			"message":    "ok",
			"statusCode": 200,
		})
	}
	mux.HandleFunc("POST /auth/sign-in", handler)
	mux.HandleFunc("POST /auth/sign-up", handler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestSignIn_StoresToken(t *testing.T) {
	server := newAuthBackend(t)
	tokens := session.NewMemoryStore()
	svc := NewService(api.NewClient(server.URL, tokens, nil), tokens, nil)

	err := svc.SignIn(context.Background(), Credentials{Email: "a@b.c", Password: "correct"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-a@b.c", tokens.Get())
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	server := newAuthBackend(t)
	tokens := session.NewMemoryStore()
	svc := NewService(api.NewClient(server.URL, tokens, nil), tokens, nil)

	err := svc.SignIn(context.Background(), Credentials{Email: "a@b.c", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error(), "server message surfaces verbatim")
	assert.Empty(t, tokens.Get(), "no token may be stored on failure")
}

func TestSignUp_StoresToken(t *testing.T) {
	server := newAuthBackend(t)
	tokens := session.NewMemoryStore()
	svc := NewService(api.NewClient(server.URL, tokens, nil), tokens, nil)

	err := svc.SignUp(context.Background(), Credentials{Email: "new@b.c", Password: "correct"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-new@b.c", tokens.Get())
}

func TestSignOut_ClearsToken(t *testing.T) {
	tokens := session.NewMemoryStore()
	require.NoError(t, tokens.Set("tok"))

	svc := NewService(nil, tokens, nil)
	require.NoError(t, svc.SignOut())
	assert.Empty(t, tokens.Get())
}
