// Package client provides the single configured HTTP channel to the
// WiFiQ ticketing API. It handles request/response marshaling, bearer
// credential injection, and logging.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rafiaprilian/wifiq-client/internal/apierr"
	"github.com/rafiaprilian/wifiq-client/internal/constants"
	"github.com/rafiaprilian/wifiq-client/internal/credentials"
	"github.com/rafiaprilian/wifiq-client/internal/models"
)

// Client is the configured request sender for the ticketing API.
// Before every request it reads the bearer credential fresh from the
// credentials store; when no credential is stored the request goes out
// anonymous. There is no retry, response interception, or rate
// limiting: failures propagate directly to the caller.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	storageBaseURL string
	creds          credentials.Store
	logger         *logrus.Logger
}

// New creates a Client for the ticketing API.
//
// Parameters:
//   - baseURL: API base URL (e.g. "http://localhost:8000/api")
//   - storageBaseURL: base URL for uploaded-file assets
//   - timeout: HTTP request timeout duration
//   - creds: bearer credential store, read fresh on every request
//   - logger: structured logger for HTTP operations
func New(
	baseURL string,
	storageBaseURL string,
	timeout time.Duration,
	creds credentials.Store,
	logger *logrus.Logger,
) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		storageBaseURL: strings.TrimSuffix(storageBaseURL, "/"),
		creds:          creds,
		logger:         logger,
	}
}

// Do executes an HTTP request with JSON marshaling and credential
// injection. Returns the HTTP response; the caller is responsible for
// closing the response body.
func (c *Client) Do(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body interface{},
) (*http.Response, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	// Marshal request body if provided
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	requestID := uuid.NewString()

	// Fixed headers on every outgoing request
	req.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	req.Header.Set(constants.HeaderXRequestedWith, constants.XMLHTTPRequest)
	req.Header.Set(constants.HeaderNgrokSkipWarning, "true")
	req.Header.Set(constants.HeaderXRequestID, requestID)
	if body != nil {
		req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	// Read the credential fresh from storage; anonymous requests are
	// allowed through when none is stored.
	token, tokenErr := c.creds.Token()
	switch {
	case tokenErr == nil:
		req.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+token)
	case !errors.Is(tokenErr, credentials.ErrNoToken):
		c.logger.WithError(tokenErr).Warn("Failed to read bearer credential, sending anonymous request")
	}

	c.logger.WithFields(logrus.Fields{
		"method":     method,
		"url":        requestURL,
		"request_id": requestID,
	}).Debug("Sending HTTP request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"method":     method,
			"url":        requestURL,
			"request_id": requestID,
			"error":      err,
		}).Error("HTTP request failed")
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"method":     method,
		"url":        requestURL,
		"request_id": requestID,
		"status":     resp.StatusCode,
	}).Debug("Received HTTP response")

	return resp, nil
}

// Call executes a request and decodes the standard response envelope.
// Non-2xx statuses are returned as *apierr.Error with the backend's
// failure body parsed in.
func (c *Client) Call(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body interface{},
) (*models.Envelope, error) {
	resp, err := c.Do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apierr.FromResponse(resp)
	}

	var envelope models.Envelope
	if resp.StatusCode == http.StatusNoContent {
		return &envelope, nil
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response envelope: %w", decodeErr)
	}

	return &envelope, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// StorageURL returns the absolute URL of an uploaded-file asset under
// the storage base, for rendering attachment links.
func (c *Client) StorageURL(path string) string {
	return c.storageBaseURL + "/" + strings.TrimPrefix(path, "/")
}
