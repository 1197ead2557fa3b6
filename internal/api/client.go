// Package api is the REST client for the travel backend. Every call issues
// exactly one HTTP request: no retries, no caching.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/alexisbeaulieu97/yatra/internal/config"
	"github.com/alexisbeaulieu97/yatra/internal/logger"
	yatraerrors "github.com/alexisbeaulieu97/yatra/pkg/errors"
)

// DefaultTimeout bounds every request.
const DefaultTimeout = 10 * time.Second

// TokenSource supplies the bearer token for outgoing requests. An empty
// string means no Authorization header is sent.
type TokenSource func() string

// NoToken is the default token source. Sessions are not persisted, so there
// is never a token to send.
func NoToken() string { return "" }

// Options configures a Client.
type Options struct {
	BaseURL     string
	Timeout     time.Duration
	Logger      *logger.Logger
	TokenSource TokenSource
	// HTTPClient overrides the underlying transport, mainly for tests.
	HTTPClient *http.Client
}

// HTTPError is returned for any response with a status code of 400 or above.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

// Client exposes the API operation groups.
type Client struct {
	rest *resty.Client
	log  *logger.Logger

	Auth    *AuthAPI
	States  *StatesAPI
	Posts   *PostsAPI
	Chatbot *ChatbotAPI
	Map     *MapAPI
	Profile *ProfileAPI
}

// New builds a Client from opts.
func New(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	tokens := opts.TokenSource
	if tokens == nil {
		tokens = NoToken
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("api")

	var rest *resty.Client
	if opts.HTTPClient != nil {
		rest = resty.NewWithClient(opts.HTTPClient)
	} else {
		rest = resty.New()
	}

	rest.SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetLogger(restyLogger{log: log})

	rest.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := tokens(); token != "" {
			req.SetAuthToken(token)
		}
		return nil
	})

	rest.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			log.WithFields(map[string]any{"url": resp.Request.URL}).Warn("unauthorized, login required")
		}
		return nil
	})

	c := &Client{rest: rest, log: log}
	c.Auth = &AuthAPI{c: c}
	c.States = &StatesAPI{c: c}
	c.Posts = &PostsAPI{c: c}
	c.Chatbot = &ChatbotAPI{c: c}
	c.Map = &MapAPI{c: c}
	c.Profile = &ProfileAPI{c: c}
	return c
}

// NewFromConfig builds a Client from the api section of cfg.
func NewFromConfig(cfg config.Config, log *logger.Logger) *Client {
	return New(Options{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout, Logger: log})
}

// BaseURL returns the configured server root.
func (c *Client) BaseURL() string {
	return c.rest.BaseURL
}

// do runs one request and returns the raw response body. The body is not
// decoded because the server's response shapes are not fixed.
func (c *Client) do(ctx context.Context, op, method, path string, build func(*resty.Request)) (json.RawMessage, error) {
	req := c.rest.R().SetContext(ctx)
	if build != nil {
		build(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, yatraerrors.NewRequestError(op, err)
	}
	if resp.IsError() {
		return nil, yatraerrors.NewRequestError(op, &HTTPError{
			Method:     method,
			URL:        resp.Request.URL,
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
		})
	}

	c.log.WithFields(map[string]any{"op": op, "status": resp.StatusCode()}).Debug("request completed")
	return json.RawMessage(resp.Body()), nil
}

type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error(nil, fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, v...))
}
