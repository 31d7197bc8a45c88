package hooks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HttpFetcher downloads processed images over plain http. The stylist
// service serves them without authentication.
type HttpFetcher struct {
	Client *http.Client
}

func NewHttpFetcher() *HttpFetcher {
	return &HttpFetcher{
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (f *HttpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	response, err := f.Client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("unable to fetch %s: %s", url, response.Status)
	}

	return io.ReadAll(response.Body)
}
