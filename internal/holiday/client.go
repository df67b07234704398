package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

// DefaultBaseURL is the Nager.Date public holidays endpoint.
const DefaultBaseURL = "https://date.nager.at/api/v3/PublicHolidays"

// newHTTPClient returns an http.Client with a 10-second timeout.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// doGet performs a GET request and decodes the JSON response into dst.
func doGet(ctx context.Context, client *http.Client, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", rawURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned status %d", rawURL, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", rawURL, err)
	}

	return nil
}

// Client fetches public holidays from the Nager.Date API (no API key required).
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient constructs a Client using the production Nager.Date URL.
func NewClient() *Client {
	return &Client{baseURL: DefaultBaseURL, client: newHTTPClient()}
}

// NewClientWithURL constructs a Client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: newHTTPClient()}
}

// Fetch retrieves all public holidays of country in the given year.
func (c *Client) Fetch(ctx context.Context, year int, country string) ([]Holiday, error) {
	endpoint := c.baseURL + "/" + strconv.Itoa(year) + "/" + url.PathEscape(country)

	var raw []Holiday
	if err := doGet(ctx, c.client, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("nager.date fetch for %d/%s: %w", year, country, err)
	}

	if raw == nil {
		raw = []Holiday{}
	}
	return raw, nil
}
