package spotwx

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gagreene/spotwx/internal/httputil"
	"github.com/gagreene/spotwx/internal/models"
)

// Client fetches forecast pages from the provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a provider client. An empty baseURL uses the
// production endpoint; a zero timeout uses httputil.DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httputil.NewClient(timeout),
		baseURL:    baseURL,
	}
}

// Fetch issues a single GET for the request's forecast page and extracts
// the embedded rows. There is no retry: a non-200 response comes back as
// a *StatusError and a page without the data block as ErrDataNotFound.
func (c *Client) Fetch(ctx context.Context, req models.Request) ([]models.ForecastRow, error) {
	url := BuildURL(c.baseURL, req)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", "spotwx-fetcher/1.0")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	rows, err := ExtractRows(resp.Body)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
