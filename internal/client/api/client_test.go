package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin", req["username"])
		assert.Equal(t, "admin123", req["password"])

		json.NewEncoder(w).Encode(map[string]string{
			"token":      "tok",
			"expires_in": "2026-01-01T00:00:00Z",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	res, err := c.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, "2026-01-01T00:00:00Z", res.ExpiresIn)
}

func TestLogin_Unauthorized(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "admin", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreateUser_SendsBearerToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "u1", "name": "Ana", "email": "a@x.com"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	user, err := c.CreateUser(context.Background(), "tok", "Ana", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestUpdateUser_OmitsNilFields(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"name": "X"}, body)

		json.NewEncoder(w).Encode(map[string]string{"id": "u1", "name": "X", "email": "a@x.com"})
	}))
	defer srv.Close()

	name := "X"
	c := New(srv.URL)
	user, err := c.UpdateUser(context.Background(), "tok", "u1", UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "X", user.Name)
}

func TestGetUser_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"User not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetUser(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUser_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.DeleteUser(context.Background(), "tok", "u1")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrUnauthorized))
	require.False(t, errors.Is(err, ErrNotFound))
}
