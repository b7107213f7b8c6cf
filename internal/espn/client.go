package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// BaseURL is the root of the ESPN site API; a sport path such as
	// "basketball/wnba" is appended per request.
	BaseURL = "https://site.api.espn.com/apis/site/v2/sports"

	userAgent      = "MMM-LiveStats"
	requestTimeout = 15 * time.Second
)

// Client fetches schedule, team and summary resources from the ESPN site API.
// Responses are decoded into untyped maps; callers read them through the
// extract helpers so that missing fields degrade to zero values instead of
// failing the whole payload.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client with a custom base URL. An empty baseURL selects the
// public ESPN site API.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NewClient creates a client with default settings.
func NewClient() *Client {
	return New(BaseURL)
}

// FetchTeamSchedule fetches the full schedule for a team.
func (c *Client) FetchTeamSchedule(ctx context.Context, sportPath, teamID string) (map[string]any, error) {
	url := fmt.Sprintf("%s/%s/teams/%s/schedule", c.baseURL, sportPath, teamID)
	return c.fetch(ctx, url)
}

// FetchTeamInfo fetches a team's info resource (names, logos, record).
func (c *Client) FetchTeamInfo(ctx context.Context, sportPath, teamID string) (map[string]any, error) {
	url := fmt.Sprintf("%s/%s/teams/%s", c.baseURL, sportPath, teamID)
	return c.fetch(ctx, url)
}

// FetchEventSummary fetches the detailed summary (box score) for one event.
func (c *Client) FetchEventSummary(ctx context.Context, sportPath, eventID string) (map[string]any, error) {
	url := fmt.Sprintf("%s/%s/summary?event=%s", c.baseURL, sportPath, eventID)
	return c.fetch(ctx, url)
}

func (c *Client) fetch(ctx context.Context, url string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return result, nil
}
