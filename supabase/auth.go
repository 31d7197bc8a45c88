package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

// TopicAuthStateChanged is emitted with the new *SessionUser (nil when signed
// out) every time the session state changes.
const TopicAuthStateChanged = "auth:state_changed"

type authResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// SignIn exchanges the credentials for a token pair, persists it and notifies
// auth-state subscribers.
func (c *Client) SignIn(ctx context.Context, email string, password string) (*SessionUser, error) {
	return c.authenticate(ctx, "/auth/v1/token?grant_type=password", email, password)
}

// SignUp registers a new account. Supabase returns a session right away when
// email confirmation is disabled for the project.
func (c *Client) SignUp(ctx context.Context, email string, password string) (*SessionUser, error) {
	return c.authenticate(ctx, "/auth/v1/signup", email, password)
}

func (c *Client) authenticate(ctx context.Context, path string, email string, password string) (*SessionUser, error) {
	requestBody, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	request, err := c.newRequest(ctx, "POST", path, bytes.NewReader(requestBody))
	if err != nil {
		return nil, err
	}

	request.Header.Set("Content-Type", "application/json")
	// The anonymous key must be used even when a stale session is around
	request.Header.Set("Authorization", "Bearer "+c.publicKey)

	resp, err := c.do(request)
	if err != nil {
		return nil, err
	}

	session, err := c.storeAuthResponse(resp)
	if err != nil {
		return nil, err
	}

	user, err := userFromAccessToken(session.AccessToken)
	if err != nil {
		return nil, err
	}

	c.emit(TopicAuthStateChanged, user)

	return user, nil
}

func (c *Client) refreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	if refreshToken == "" {
		return nil, errors.New("no refresh token available")
	}

	requestBody, _ := json.Marshal(map[string]string{
		"refresh_token": refreshToken,
	})

	request, err := c.newRequest(ctx, "POST", "/auth/v1/token?grant_type=refresh_token", bytes.NewReader(requestBody))
	if err != nil {
		return nil, err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+c.publicKey)

	resp, err := c.do(request)
	if err != nil {
		return nil, err
	}

	return c.storeAuthResponse(resp)
}

func (c *Client) storeAuthResponse(resp *response) (*Session, error) {
	var auth authResponse
	if err := resp.JSON(&auth); err != nil {
		return nil, err
	}

	if auth.AccessToken == "" {
		return nil, errors.New("authentication response carries no access token")
	}

	session := &Session{
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
		ExpiresAt:    time.Now().Unix() + auth.ExpiresIn,
	}

	if err := c.sessions.Save(session); err != nil {
		return nil, err
	}

	return session, nil
}

// SignOut revokes the session on the backend, drops the local token pair and
// notifies auth-state subscribers. The local state is cleared even when the
// revocation request fails.
func (c *Client) SignOut(ctx context.Context) error {
	session, _ := c.sessions.Load()
	if session != nil && session.AccessToken != "" {
		request, err := c.newRequest(ctx, "POST", "/auth/v1/logout", nil)
		if err == nil {
			request.Header.Set("Authorization", "Bearer "+session.AccessToken)
			_, _ = c.do(request)
		}
	}

	if err := c.sessions.Clear(); err != nil {
		return err
	}

	c.emit(TopicAuthStateChanged, (*SessionUser)(nil))

	return nil
}

// OnAuthStateChange registers fn for session change notifications and hands
// back a releasable subscription. The consumer must call Release when it goes
// away, there is no implicit cleanup.
func (c *Client) OnAuthStateChange(fn func(user *SessionUser)) *AuthSubscription {
	c.bus.Subscribe(TopicAuthStateChanged, fn)

	return &AuthSubscription{
		bus: c.bus,
		fn:  fn,
	}
}

type AuthSubscription struct {
	bus interface {
		Unsubscribe(topic string, fn interface{})
	}

	once sync.Once
	fn   func(user *SessionUser)
}

func (s *AuthSubscription) Release() {
	s.once.Do(func() {
		s.bus.Unsubscribe(TopicAuthStateChanged, s.fn)
	})
}
