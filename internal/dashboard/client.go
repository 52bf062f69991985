// Package dashboard renders a terminal view of a running sentiment API.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tweet-sentiment/internal/model"

	"github.com/go-resty/resty/v2"
)

// ErrUnreachable means the API could not be contacted at all.
var ErrUnreachable = errors.New("dashboard: api unreachable")

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("dashboard: api returned %d", e.StatusCode)
	}
	return fmt.Sprintf("dashboard: api returned %d: %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Client talks to the sentiment API over HTTP.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

func (c *Client) Health(ctx context.Context) (model.HealthStatus, error) {
	var out model.HealthStatus
	err := c.get(ctx, "/api/health", nil, &out)
	return out, err
}

// Posts fetches up to limit posts, optionally restricted to one sentiment.
func (c *Client) Posts(ctx context.Context, limit int, sentiment string) (model.PostsResponse, error) {
	q := map[string]string{"limit": strconv.Itoa(limit)}
	if s := strings.TrimSpace(sentiment); s != "" {
		q["sentiment"] = s
	}
	var out model.PostsResponse
	err := c.get(ctx, "/api/tweets", q, &out)
	return out, err
}

func (c *Client) Trending(ctx context.Context) (model.TrendingSummary, error) {
	var out model.TrendingSummary
	err := c.get(ctx, "/api/trending", nil, &out)
	return out, err
}

func (c *Client) Analyze(ctx context.Context, text string) (model.AnalyzeResponse, error) {
	var out model.AnalyzeResponse
	var eb errorBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"text": text}).
		SetResult(&out).
		SetError(&eb).
		Post("/api/analyze")
	return out, check(resp, err, &eb)
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	var eb errorBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(out).
		SetError(&eb).
		Get(path)
	return check(resp, err, &eb)
}

func check(resp *resty.Response, err error, eb *errorBody) error {
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if resp.IsError() {
		msg := eb.Error
		if eb.Message != "" {
			msg = eb.Message
		}
		if msg == "" {
			msg = strings.TrimSpace(resp.String())
		}
		return &APIError{StatusCode: resp.StatusCode(), Message: msg}
	}
	return nil
}
