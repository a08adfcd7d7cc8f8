package client

import (
	"context"
	"net/http"
	"sync"
)

// Session is an authenticated conversation with the API. The token rotates
// on profile edits; Token always returns the latest one.
type Session struct {
	client *Client

	mu    sync.RWMutex
	token string
	user  *User
}

// NewSession resumes a session from a previously stored token.
func NewSession(c *Client, token string) *Session {
	return &Session{client: c, token: token}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the profile known to the session, if any.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// EditProfile updates the caller's profile. email must be the session's own.
func (s *Session) EditProfile(ctx context.Context, email string, p Profile) (*Envelope, error) {
	var resp struct {
		Envelope
		User *User `json:"user"`
	}
	body := struct {
		Email string `json:"email"`
		Profile
	}{Email: email, Profile: p}

	header, err := s.client.do(ctx, http.MethodPut, "/api/professional_user/", s.Token(), body, &resp)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if t := header.Get(HeaderAuthToken); t != "" {
		s.token = t
	}
	if resp.User != nil {
		s.user = resp.User
	}
	s.mu.Unlock()

	env := resp.Envelope
	return &env, nil
}

// Disable soft-deletes the account. The session is unusable afterwards.
func (s *Session) Disable(ctx context.Context) (*Envelope, error) {
	var env Envelope
	if _, err := s.client.do(ctx, http.MethodDelete, "/api/professional_user/disable", s.Token(), nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Delete removes the account permanently.
func (s *Session) Delete(ctx context.Context) error {
	_, err := s.client.do(ctx, http.MethodDelete, "/api/professional_user/", s.Token(), nil, nil)
	return err
}
