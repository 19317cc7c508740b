package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/storefront-client/internal/storage"
)

// Client talks to the storefront backend.  It owns the HTTP transport;
// no other component opens a socket.  The session store is read for the
// bearer token on every request and cleared when an authenticated call
// is rejected with 401; those are the only two ways the gateway touches
// durable state.
type Client struct {
	http    *http.Client
	baseURL string
	store   storage.SessionStore
	log     *logrus.Entry
}

// New builds a Client against the given backend origin.  The timeout
// bounds each request end to end; there is no retry or backoff layer,
// this is a thin proxy and failures surface to the caller.
func New(baseURL string, timeout time.Duration, store storage.SessionStore, log *logrus.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		store:   store,
		log:     log.WithField("component", "api"),
	}
}

// backendError is the error envelope the backend uses for 4xx/5xx
// bodies.  Both field names have been observed.
type backendError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do issues one request and returns the raw response body.  authRequired
// marks calls that are meaningless without a session: a 401 on such a
// call tears the stored session down and comes back as
// ErrUnauthenticated.  A 401 on a public call stays a plain ErrClient
// so a stray backend misconfiguration cannot log the user out while
// they browse the catalog.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, authRequired bool) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: ErrClient, Message: "could not encode request body"}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, &Error{Kind: ErrClient, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token, _ := c.store.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{"method": method, "path": path}).WithError(err).Warn("request failed")
		return nil, &Error{Kind: ErrNetwork, Message: "could not reach the server"}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: ErrNetwork, Message: "response was cut short"}
	}

	c.log.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("request complete")

	switch {
	case resp.StatusCode >= 500:
		return nil, &Error{Kind: ErrServer, Status: resp.StatusCode, Message: errorMessage(data)}
	case resp.StatusCode == http.StatusUnauthorized && authRequired:
		// Fail closed: the stored session is no longer honored by the
		// backend, so it must not survive locally either.
		if err := c.store.Clear(ctx); err != nil {
			c.log.WithError(err).Warn("could not clear stored session")
		}
		return nil, &Error{Kind: ErrUnauthenticated, Status: resp.StatusCode, Message: errorMessage(data)}
	case resp.StatusCode >= 400:
		return nil, &Error{Kind: ErrClient, Status: resp.StatusCode, Message: errorMessage(data)}
	}
	return data, nil
}

// errorMessage pulls the backend's message out of an error body, if
// there is one.
func errorMessage(data []byte) string {
	var be backendError
	if err := json.Unmarshal(data, &be); err == nil {
		if be.Message != "" {
			return be.Message
		}
		if be.Error != "" {
			return be.Error
		}
	}
	return ""
}

// getJSON issues a GET and decodes the response into T.
func getJSON[T any](ctx context.Context, c *Client, path string, query url.Values, authRequired bool) (T, error) {
	return decode[T](c.do(ctx, http.MethodGet, path, query, nil, authRequired))
}

// sendJSON issues a request with a JSON body and decodes the response
// into T.
func sendJSON[T any](ctx context.Context, c *Client, method, path string, body any, authRequired bool) (T, error) {
	return decode[T](c.do(ctx, method, path, nil, body, authRequired))
}

// decode unmarshals a successful response body.  A body that does not
// match the expected shape is a malformed response and surfaces as
// ErrClient rather than a panic or a half-filled struct.
func decode[T any](data []byte, err error) (T, error) {
	var v T
	if err != nil {
		return v, err
	}
	if len(data) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, &Error{Kind: ErrClient, Message: "unexpected response from server"}
	}
	return v, nil
}
