// Package mmws is a small client for the Men & Mice web service REST API.
// Every call is synchronous and made once; failures are returned as
// apperror types for the caller to log and abort on.
package mmws

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wwilson/ops-scripts/internal/apperror"
	"wwilson/ops-scripts/internal/logging"
)

// DefaultBasePath is the API root on the web service host.
const DefaultBasePath = "/mmws/api"

// Options configures a Client.
type Options struct {
	Scheme   string
	Server   string
	BasePath string
	Username string
	Password string
	// Timeout of 0 leaves the http.Client default (no timeout).
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     logging.Logger
}

// Client talks to one web service host with one set of credentials.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
	logger   logging.Logger
}

// envelope is the JSON wrapper around every response body.
type envelope struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient validates opts and builds a Client.
func NewClient(opts Options) (*Client, error) {
	if opts.Server == "" {
		return nil, fmt.Errorf("server must not be empty")
	}
	if opts.Scheme == "" {
		opts.Scheme = "http"
	}
	if opts.BasePath == "" {
		opts.BasePath = DefaultBasePath
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogrusAdapter("info", "text", nil)
	}

	return &Client{
		baseURL:  opts.Scheme + "://" + strings.TrimSuffix(opts.Server, "/") + "/" + strings.Trim(opts.BasePath, "/"),
		username: opts.Username,
		password: opts.Password,
		http:     opts.HTTPClient,
		logger:   opts.Logger.WithField(logging.FieldServer, opts.Server),
	}, nil
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET for path (relative to the API root) with an already escaped
// rawQuery, and decodes the envelope's result into out.
func (c *Client) Get(ctx context.Context, path, rawQuery string, out interface{}) error {
	url := c.url(path, rawQuery)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

// Post sends body as JSON to path and decodes the envelope's result into out.
// An empty success body is accepted and leaves out untouched.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	c.logger.Debug("Calling POST", logging.Field{Key: "body", Value: string(payload)})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path, ""), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) url(path, rawQuery string) string {
	u := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	return u
}

func (c *Client) do(req *http.Request, out interface{}) error {
	url := req.URL.String()
	log := c.logger.WithFields(
		logging.Field{Key: logging.FieldMethod, Value: req.Method},
		logging.Field{Key: logging.FieldURL, Value: url},
	)

	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "*/*")

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Error("API call failed")
		return &apperror.APITransportError{Method: req.Method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Error("Failed to read API response")
		return &apperror.APITransportError{Method: req.Method, URL: url, Err: err}
	}
	if req.Method == http.MethodGet {
		log.Debug("API response", logging.Field{Key: logging.FieldStatus, Value: resp.StatusCode},
			logging.Field{Key: "body", Value: string(raw)})
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if msg, ok := envelopeError(raw); ok {
			if msg == "" {
				msg = http.StatusText(resp.StatusCode)
			}
			log.Error("API call returned an error", logging.Field{Key: logging.FieldStatus, Value: resp.StatusCode},
				logging.Field{Key: "message", Value: msg})
			return &apperror.APIResponseError{URL: url, StatusCode: resp.StatusCode, Message: msg}
		}
		return decodeResult(raw, out)
	case resp.StatusCode == http.StatusNotFound:
		log.Error("API call returned 404")
		return &apperror.NotFoundError{URL: url}
	default:
		msg := errorMessage(raw, resp.StatusCode)
		log.Error("API call returned an error", logging.Field{Key: logging.FieldStatus, Value: resp.StatusCode},
			logging.Field{Key: "message", Value: msg})
		return &apperror.APIResponseError{URL: url, StatusCode: resp.StatusCode, Message: msg}
	}
}

func decodeResult(raw []byte, out interface{}) error {
	if len(bytes.TrimSpace(raw)) == 0 || out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("error decoding API response: %w", err)
	}
	if len(env.Result) == 0 || bytes.Equal(env.Result, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(env.Result))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("error decoding API result: %w", err)
	}
	return nil
}

// envelopeError reports whether raw is an envelope carrying an error object, and its message.
func envelopeError(raw []byte) (string, bool) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Error == nil {
		return "", false
	}
	return env.Error.Message, true
}

// errorMessage extracts error.message from a failure body, falling back to the status text.
func errorMessage(raw []byte, status int) string {
	if msg, ok := envelopeError(raw); ok && msg != "" {
		return msg
	}
	return http.StatusText(status)
}
