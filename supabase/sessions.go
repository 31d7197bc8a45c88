package supabase

import (
	"context"
	"encoding/json"
	"os"
	"path"
	"time"

	"github.com/SermoDigital/jose/jws"
)

// Session is the locally persisted token pair. It is the CLI counterpart of
// the browser's auth cookies.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt != 0 && now.Unix() >= s.ExpiresAt
}

// SessionUser is the identity carried inside the access token claims.
type SessionUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type SessionsStorage interface {
	Load() (*Session, error)
	Save(session *Session) error
	Clear() error
}

func NewFileSessionsStorage(basePath string) (*FileSessionsStorage, error) {
	if err := os.MkdirAll(basePath, 0700); err != nil {
		return nil, err
	}

	return &FileSessionsStorage{path: path.Join(basePath, "session.json")}, nil
}

type FileSessionsStorage struct {
	path string
}

func (f *FileSessionsStorage) Load() (*Session, error) {
	blob, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	var session *Session
	if err := json.Unmarshal(blob, &session); err != nil {
		// An unreadable session file is the same as no session
		return nil, nil
	}

	return session, nil
}

func (f *FileSessionsStorage) Save(session *Session) error {
	blob, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return os.WriteFile(f.path, blob, 0600)
}

func (f *FileSessionsStorage) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// GetSession resolves the current authenticated user, refreshing an expired
// token pair once. It returns nil without an error when there is no session
// or the refresh was rejected: a signed-out client is not a failure.
func (c *Client) GetSession(ctx context.Context) (*SessionUser, error) {
	session, err := c.sessions.Load()
	if err != nil {
		return nil, err
	}

	if session == nil || session.AccessToken == "" {
		return nil, nil
	}

	if session.Expired(time.Now()) {
		session, err = c.refreshSession(ctx, session.RefreshToken)
		if err != nil {
			_ = c.sessions.Clear()
			c.emit(TopicAuthStateChanged, (*SessionUser)(nil))

			return nil, nil
		}
	}

	return userFromAccessToken(session.AccessToken)
}

// The identity fields are read from the token claims without verifying the
// signature: the signing secret never leaves the backend and the token came
// from it in the first place.
func userFromAccessToken(accessToken string) (*SessionUser, error) {
	token, err := jws.ParseJWT([]byte(accessToken))
	if err != nil {
		return nil, err
	}

	claims := token.Claims()
	user := &SessionUser{}
	if sub, ok := claims.Get("sub").(string); ok {
		user.ID = sub
	}

	if email, ok := claims.Get("email").(string); ok {
		user.Email = email
	}

	if metadata, ok := claims.Get("user_metadata").(map[string]interface{}); ok {
		if fullName, ok := metadata["full_name"].(string); ok {
			user.FullName = fullName
		}
	}

	return user, nil
}
