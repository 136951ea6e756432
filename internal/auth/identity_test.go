package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejasmmali/canteen-swift/internal/domain"
)

func TestIdentityVerify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		switch r.Header.Get("Authorization") {
		case "Bearer good-token":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"user-123"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	client := NewIdentityClient(srv.URL, "anon-key")

	id, err := client.Verify(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)

	_, err = client.Verify(context.Background(), "bad-token")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestIdentityVerifyProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewIdentityClient(srv.URL, "")
	_, err := client.Verify(context.Background(), "token")
	assert.True(t, errors.Is(err, domain.ErrTransport))
}

func TestIdentityVerifyEmptySubject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewIdentityClient(srv.URL, "")
	_, err := client.Verify(context.Background(), "token")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}
