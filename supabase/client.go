// Package supabase is a thin client for the managed backend: auth sessions,
// the profiles and garments tables and the public object storage. Only the
// operations the application actually consumes are implemented.
package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/lokafit/lokafit/dispatcher"
)

type Client struct {
	http      *http.Client
	baseUrl   string
	publicKey string
	sessions  SessionsStorage
	bus       dispatcher.Dispatcher
}

func New(
	client *http.Client,
	baseUrl string,
	publicKey string,
	sessions SessionsStorage,
	bus dispatcher.Dispatcher,
) (*Client, error) {
	if baseUrl == "" {
		return nil, errors.New("supabase url must be configured")
	}

	if publicKey == "" {
		return nil, errors.New("supabase public key must be configured")
	}

	return &Client{
		http:      client,
		baseUrl:   strings.TrimSuffix(baseUrl, "/"),
		publicKey: publicKey,
		sessions:  sessions,
		bus:       bus,
	}, nil
}

type response struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (r *response) JSON(result interface{}) error {
	return json.Unmarshal(r.Body, result)
}

func (c *Client) do(request *http.Request) (*response, error) {
	c.setHeaders(request)

	resp, err := c.http.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp.Status, body)
	}

	return &response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       body,
	}, nil
}

func (c *Client) setHeaders(request *http.Request) {
	request.Header.Set("apikey", c.publicKey)
	if request.Header.Get("Authorization") == "" {
		token := c.publicKey
		if session, err := c.sessions.Load(); err == nil && session != nil && session.AccessToken != "" {
			token = session.AccessToken
		}

		request.Header.Set("Authorization", "Bearer "+token)
	}

	if request.Header.Get("Accept") == "" {
		request.Header.Set("Accept", "application/json")
	}
}

func (c *Client) newRequest(ctx context.Context, method string, path string, body io.Reader) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, method, c.baseUrl+path, body)
}

func (c *Client) emit(topic string, args ...interface{}) {
	if c.bus == nil {
		return
	}

	c.bus.Emit(topic, args...)
}
