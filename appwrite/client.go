package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/studioflow/portfolio-backend/config"
)

// Client talks to the Appwrite REST API: the document database holding the
// portfolio collections and the storage buckets holding project assets.
// It is constructed once at startup from validated configuration and is safe
// for concurrent use.
type Client struct {
	endpoint   string
	projectID  string
	apiKey     string
	databaseID string
	httpClient *http.Client
	logger     zerolog.Logger
}

// requestTimeout bounds every store call; page renders degrade to empty
// results past this rather than hanging.
const requestTimeout = 10 * time.Second

func NewClient(cfg config.Appwrite) *Client {
	logger := log.With().Str("clientName", "appwrite").Logger()

	return &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		projectID:  cfg.ProjectID,
		apiKey:     cfg.APIKey,
		databaseID: cfg.DatabaseID,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// Endpoint returns the configured API endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ProjectID returns the configured tenant/project identifier.
func (c *Client) ProjectID() string {
	return c.projectID
}

// UniqueID generates a new document identifier in the store's format:
// lowercase alphanumerics, at most 20 characters.
func UniqueID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
}

// apiError represents an error response from the Appwrite API
type apiError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}

func (e apiError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("appwrite error (code %d)", e.Code)
	}
	return fmt.Sprintf("appwrite error (code %d): %s", e.Code, e.Message)
}

// do issues a JSON request against the API and decodes the response into out
// (skipped when out is nil). Non-2xx responses are returned as an error
// carrying the store's own message.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonPayload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request payload: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonPayload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to record store failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read record store response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp apiError
		if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Message != "" {
			return errResp
		}
		return fmt.Errorf("record store returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode record store response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-Appwrite-Project", c.projectID)
	if c.apiKey != "" {
		req.Header.Set("X-Appwrite-Key", c.apiKey)
	}
	req.Header.Set("X-Appwrite-Response-Format", "1.6.0")
}
