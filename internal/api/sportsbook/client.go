package sportsbook

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/draftboardhq/bigboard/internal/config"
)

const maxAttempts = 3

var retryBackoff = 2 * time.Second

// FetchError is returned once the retry budget for a request is exhausted.
type FetchError struct {
	Endpoint string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s failed after %d attempts: %v", e.Endpoint, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type Client struct {
	httpClient *http.Client
	baseURL    string
	Config     config.Sportsbook
}

func NewClient(cfg config.Sportsbook) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s", cfg.Host)
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		Config:     cfg,
	}
}

func (c *Client) Get(endpoint string, params map[string]string, result interface{}) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			time.Sleep(retryBackoff * time.Duration(attempt-1))
		}
		lastErr = c.doGet(endpoint, params, result)
		if lastErr == nil {
			return nil
		}
	}
	return &FetchError{Endpoint: endpoint, Attempts: maxAttempts, Err: lastErr}
}

func (c *Client) doGet(endpoint string, params map[string]string, result interface{}) error {
	url := fmt.Sprintf("%s%s", c.baseURL, endpoint)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	q := req.URL.Query()
	for key, value := range params {
		q.Add(key, value)
	}
	req.URL.RawQuery = q.Encode()

	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}

	return nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("X-RapidAPI-Key", c.Config.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.Config.Host)
}
