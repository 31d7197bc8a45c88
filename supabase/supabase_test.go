package supabase

import (
	"encoding/base64"
	"net/http"

	"github.com/h2non/gock"

	"github.com/lokafit/lokafit/dispatcher"
)

type sessionsStorageMock struct {
	session *Session
	loadErr error
	saveErr error
}

func (s *sessionsStorageMock) Load() (*Session, error) {
	return s.session, s.loadErr
}

func (s *sessionsStorageMock) Save(session *Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}

	s.session = session

	return nil
}

func (s *sessionsStorageMock) Clear() error {
	s.session = nil

	return nil
}

func createClient(sessions SessionsStorage, bus dispatcher.Dispatcher) *Client {
	httpClient := &http.Client{}
	gock.InterceptClient(httpClient)

	client, err := New(httpClient, "http://supabase.local", "public-key", sessions, bus)
	if err != nil {
		panic(err)
	}

	return client
}

// recordAuthEvents subscribes to the auth-state topic and returns a pointer
// to the collected arguments. The bus delivers synchronously, so the slice is
// complete as soon as the tested call returns.
func recordAuthEvents(bus dispatcher.Dispatcher) *[]*SessionUser {
	events := &[]*SessionUser{}
	bus.Subscribe(TopicAuthStateChanged, func(user *SessionUser) {
		*events = append(*events, user)
	})

	return events
}

func encodeAccessToken(claims string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(claims))
	signature := base64.RawURLEncoding.EncodeToString([]byte("signature"))

	return header + "." + payload + "." + signature
}

func defaultAccessToken() string {
	return encodeAccessToken(`{
		"sub": "user-1",
		"email": "user@lokafit.app",
		"user_metadata": {"full_name": "Ayu Lestari"}
	}`)
}
