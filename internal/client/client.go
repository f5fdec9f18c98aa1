// Package client provides a small HTTP client for the hellotutor API, used
// by the CLI's greet and healthcheck commands.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"hellotutor/internal/application/dto"
)

const (
	// userAgent is the User-Agent header value sent with all API requests.
	userAgent = "hellotutor-client/1.0"

	// API endpoint paths.
	pathHealth = "/health"
	pathHello  = "/hello"
)

// APIError is a failure envelope returned by the server, surfaced to CLI
// callers with its classification intact.
type APIError struct {
	StatusCode  int
	Type        string
	Message     string
	Recoverable bool
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Type, e.StatusCode, e.Message)
}

// Client provides methods for interacting with the hellotutor API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client with the given configuration.
func NewClient(config *Config) (*Client, error) {
	return NewClientWithHTTPClient(config, nil)
}

// NewClientWithHTTPClient creates a new API client with the given
// configuration and HTTP client. A nil httpClient gets a default client
// with the configured timeout.
func NewClientWithHTTPClient(config *Config, httpClient *http.Client) (*Client, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		baseURL:    config.APIURL,
		httpClient: httpClient,
	}, nil
}

// GetGreeting fetches the greeting for name. An empty name requests the
// default greeting.
func (c *Client) GetGreeting(ctx context.Context, name string) (*dto.GreetingResponse, error) {
	path := pathHello
	if name != "" {
		path += "/" + url.PathEscape(name)
	}

	var greeting dto.GreetingResponse
	if err := c.doRequest(ctx, path, &greeting); err != nil {
		return nil, err
	}
	return &greeting, nil
}

// GetHealth fetches the server health report.
func (c *Client) GetHealth(ctx context.Context) (*dto.HealthResponse, error) {
	var health dto.HealthResponse
	if err := c.doRequest(ctx, pathHealth, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// doRequest performs a GET request and decodes the response. Non-2xx
// responses are decoded as error envelopes and surfaced as *APIError.
func (c *Client) doRequest(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope dto.ErrorEnvelope
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr != nil || !envelope.Error {
			return fmt.Errorf("API request failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return &APIError{
			StatusCode:  envelope.Status,
			Type:        envelope.Type,
			Message:     envelope.Message,
			Recoverable: envelope.Recoverable,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
