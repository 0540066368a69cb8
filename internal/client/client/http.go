package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
)

const maxResponseBytes = 1 << 20

type response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    *models.Session `json:"user"`
}

type HTTPClient struct {
	endpoint *url.URL
	http     *http.Client
	timeout  time.Duration
	log      logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds every call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.log = l
		}
	}
}

func NewHTTPClient(endpoint string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid endpoint %q: scheme must be http or https", endpoint)
	}

	c := &HTTPClient{endpoint: u, http: http.DefaultClient, log: logging.NewNop()}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	resp, err := c.call(ctx, ActionLogin, loginPayload{Email: email, Password: string(password)})
	if err != nil {
		return nil, err
	}
	if err := resp.User.Validate(); err != nil {
		return nil, fmt.Errorf("%w: login answer: %w", ErrUnavailable, err)
	}
	return resp.User, nil
}

func (c *HTTPClient) Signup(ctx context.Context, name, email string, password []byte) error {
	_, err := c.call(ctx, ActionSignup, signupPayload{Name: name, Email: email, Password: string(password)})
	return err
}

func (c *HTTPClient) UpdateSettings(ctx context.Context, email string, darkMode bool) error {
	_, err := c.call(ctx, ActionUpdateSettings, updateSettingsPayload{Email: email, DarkMode: darkMode})
	return err
}

func (c *HTTPClient) call(ctx context.Context, action Action, payload any) (*response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", action, err)
	}

	u := *c.endpoint
	q := u.Query()
	q.Set("action", string(action))
	q.Set("data", string(data))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", action, err)
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")

	log := c.log.With("action", string(action), "request_id", requestID)
	start := time.Now()

	res, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "remote call failed", "err", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, action, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxResponseBytes))
		log.Warn(ctx, "remote call bad status", "status", res.StatusCode)
		return nil, fmt.Errorf("%w: %s: status %d", ErrUnavailable, action, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		log.Warn(ctx, "remote answer unreadable", "err", err)
		return nil, fmt.Errorf("%w: %s: read answer: %w", ErrUnavailable, action, err)
	}
	out, err := decodeAnswer(body)
	if err != nil {
		log.Warn(ctx, "remote answer unreadable", "err", err)
		return nil, fmt.Errorf("%w: %s: decode answer: %w", ErrUnavailable, action, err)
	}

	log.Debug(ctx, "remote call done", "success", out.Success, "elapsed", time.Since(start))

	if !out.Success {
		return nil, &RejectedError{Action: action, Message: out.Message}
	}
	return out, nil
}

// decodeAnswer accepts exactly one JSON object carrying a boolean "success".
func decodeAnswer(body []byte) (*response, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("answer is not an object")
	}
	var success bool
	raw, ok := fields["success"]
	if !ok {
		return nil, errors.New(`answer lacks "success"`)
	}
	if err := json.Unmarshal(raw, &success); err != nil || string(raw) == "null" {
		return nil, fmt.Errorf(`"success" is not a boolean: %s`, raw)
	}

	var out response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
