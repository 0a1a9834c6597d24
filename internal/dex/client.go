// Package dex implements a typed client for the Dex CRM REST API.
// Each method issues exactly one HTTP request; the adapter holds no record
// state between calls.
package dex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jamesbinford/mcpservers/internal/common"
)

// DefaultBaseURL is the public Dex REST endpoint.
const DefaultBaseURL = "https://api.getdex.com/api/rest"

// apiKeyHeader is the credential header the Dex API authenticates with.
const apiKeyHeader = "x-hasura-dex-api-key"

// maxResponseSize caps the response body read to prevent OOM from unexpectedly large responses.
const maxResponseSize = 50 << 20 // 50MB

// Client calls the Dex CRM REST API. Safe for concurrent use; every call is
// an independent request/response exchange.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a Dex API client from config. An empty base URL falls
// back to the public Dex endpoint.
func NewClient(cfg common.DexConfig, logger *common.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.GetTimeout(),
		},
		logger: logger,
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// applyHeaders sets the credential header on an outgoing request.
func (c *Client) applyHeaders(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
}

// get performs a GET request and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	c.logger.Debug().Str("method", "GET").Str("path", path).Msg("dex request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	c.applyHeaders(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Str("method", "GET").Str("path", path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("dex request failed")
		return nil, fmt.Errorf("dex request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("dex response")

	if resp.StatusCode >= 400 {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// post performs a POST request with a JSON body and returns the response body.
func (c *Client) post(ctx context.Context, path string, data interface{}) ([]byte, error) {
	return c.doJSON(ctx, http.MethodPost, path, data)
}

// put performs a PUT request with a JSON body and returns the response body.
func (c *Client) put(ctx context.Context, path string, data interface{}) ([]byte, error) {
	return c.doJSON(ctx, http.MethodPut, path, data)
}

// del performs a DELETE request and returns the response body.
func (c *Client) del(ctx context.Context, path string) ([]byte, error) {
	c.logger.Debug().Str("method", "DELETE").Str("path", path).Msg("dex request")

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.applyHeaders(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Str("method", "DELETE").Str("path", path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("dex request failed")
		return nil, fmt.Errorf("dex request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("dex response")

	if resp.StatusCode >= 400 {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// doJSON performs an HTTP request with a JSON body.
func (c *Client) doJSON(ctx context.Context, method, path string, data interface{}) ([]byte, error) {
	c.logger.Debug().Str("method", method).Str("path", path).Msg("dex request")

	var bodyReader io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.applyHeaders(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Str("method", method).Str("path", path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("dex request failed")
		return nil, fmt.Errorf("dex request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("dex response")

	if resp.StatusCode >= 400 {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// pageQuery builds the limit/offset query string shared by the list endpoints.
func pageQuery(limit, offset int) string {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	return params.Encode()
}
