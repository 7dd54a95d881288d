// Package api is a typed HTTP client for the user service, used by the CLI.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// User mirrors the server's wire representation of a user record.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResult struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expires_in"`
}

type TokenInfo struct {
	Username string `json:"username"`
	Exp      int64  `json:"exp"`
}

// UserPatch carries a partial update; nil fields are omitted from the body.
type UserPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	result := &LoginResult{}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Verify(ctx context.Context, token string) (*TokenInfo, error) {
	info := &TokenInfo{}
	if err := c.do(ctx, http.MethodGet, "/auth/verify", token, nil, info, http.StatusOK); err != nil {
		return nil, err
	}
	return info, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var list []User
	if err := c.do(ctx, http.MethodGet, "/users", "", nil, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	user := &User{}
	if err := c.do(ctx, http.MethodGet, "/users/"+id, "", nil, user, http.StatusOK); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) CreateUser(ctx context.Context, token, name, email string) (*User, error) {
	body := map[string]string{"name": name, "email": email}
	user := &User{}
	if err := c.do(ctx, http.MethodPost, "/users", token, body, user, http.StatusCreated); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, patch UserPatch) (*User, error) {
	user := &User{}
	if err := c.do(ctx, http.MethodPut, "/users/"+id, token, patch, user, http.StatusOK); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, token, nil, nil, http.StatusOK)
}

// do performs one request/response cycle. 401 and 404 map to the package
// sentinels; any other unexpected status surfaces with the response body.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any, wantStatus int) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case wantStatus:
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected response: %s; body: %s", resp.Status, string(b))
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
