// Package client is a Go client for the professionals API.
//
// Public lookups live on Client. Operations that need a session token live on
// Session, which is obtained from Login (or NewSession for a stored token) and
// carries the token explicitly instead of keeping it in shared state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// HeaderAuthToken is the header the API reads and returns session tokens in.
const HeaderAuthToken = "x-auth"

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/signup", "", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a Session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var resp struct {
		Token string `json:"token"`
		User  *User  `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	header, err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &resp)
	if err != nil {
		return nil, err
	}

	token := header.Get(HeaderAuthToken)
	if token == "" {
		token = resp.Token
	}
	if token == "" {
		return nil, errors.New("professionals api: login response carried no token")
	}
	return &Session{client: c, token: token, user: resp.User}, nil
}

func (c *Client) List(ctx context.Context) ([]User, error) {
	var users []User
	if _, err := c.do(ctx, http.MethodGet, "/api/professional_user/", "", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetByID(ctx context.Context, id string) (*User, error) {
	var user User
	if _, err := c.do(ctx, http.MethodGet, "/api/professional_user/"+url.PathEscape(id), "", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListByCategory(ctx context.Context, categoryID int) ([]User, error) {
	var users []User
	path := "/api/professional_user/category/" + strconv.Itoa(categoryID)
	if _, err := c.do(ctx, http.MethodGet, path, "", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// do sends a JSON request and decodes a 2xx body into out. Non-2xx answers
// become *APIError built from the envelope when the body carries one.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) (http.Header, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("professionals api: encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(HeaderAuthToken, token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("professionals api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("professionals api: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var env Envelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			apiErr.Message = env.Message
		}
		return resp.Header, apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("professionals api: decode response: %w", err)
		}
	}
	return resp.Header, nil
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an
// *APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
