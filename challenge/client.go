package challenge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/gogpu/picasso"
)

// DefaultTimeout bounds each request made by a Client from NewClient.
const DefaultTimeout = 20 * time.Second

// maxErrorBody is how much of an error response is kept in a StatusError.
const maxErrorBody = 4096

// ErrNoURL is returned when a Client has no BaseURL.
var ErrNoURL = errors.New("challenge: no URL")

// StatusError reports a non-2xx response from the challenge server.
type StatusError struct {
	Method string
	URL    string
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	msg := "challenge: " + e.Method + " " + e.URL + ": " + e.Status
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Client talks to one challenge endpoint. GET and POST go to the same URL
// and share cookies, so the server can tie the answer to its session.
type Client struct {
	// BaseURL is the challenge endpoint.
	BaseURL string

	// HTTPClient performs the requests. It should carry a cookie jar.
	HTTPClient *http.Client
}

// NewClient returns a Client for url with a cookie jar and DefaultTimeout.
func NewClient(url string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		BaseURL:    url,
		HTTPClient: &http.Client{Jar: jar, Timeout: DefaultTimeout},
	}, nil
}

// Fetch retrieves the pending challenges.
func (c *Client) Fetch(ctx context.Context) (Input, error) {
	var in Input
	body, err := c.do(ctx, http.MethodGet, nil)
	if err != nil {
		return in, err
	}
	if err := json.Unmarshal(body, &in); err != nil {
		return in, fmt.Errorf("challenge: decode challenges: %w", err)
	}
	picasso.Logger().Info("challenge: fetched", "url", c.BaseURL, "challenges", len(in.Challenges))
	return in, nil
}

// Submit posts the digests and returns the server's reply verbatim.
func (c *Client) Submit(ctx context.Context, resp Response) (json.RawMessage, error) {
	if resp.Results == nil {
		resp.Results = map[string]string{}
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodPost, payload)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("challenge: server reply is not JSON: %q", truncate(body))
	}
	picasso.Logger().Info("challenge: submitted", "url", c.BaseURL, "results", len(resp.Results))
	return json.RawMessage(body), nil
}

func (c *Client) do(ctx context.Context, method string, payload []byte) ([]byte, error) {
	if c.BaseURL == "" {
		return nil, ErrNoURL
	}
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	res, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{
			Method: method,
			URL:    c.BaseURL,
			Status: res.Status,
			Body:   truncate(data),
		}
	}
	return data, nil
}

func truncate(b []byte) string {
	if len(b) > maxErrorBody {
		b = b[:maxErrorBody]
	}
	return strings.TrimSpace(string(b))
}

// SolveURL fetches the challenges at url, solves them and posts the
// digests, returning the server's reply and the per-challenge report.
func SolveURL(ctx context.Context, url string, opts ...Option) (json.RawMessage, Report, error) {
	c, err := NewClient(url)
	if err != nil {
		return nil, Report{}, err
	}
	return c.Solve(ctx, NewSolver(opts...))
}

// Solve fetches, solves with s and submits.
func (c *Client) Solve(ctx context.Context, s *Solver) (json.RawMessage, Report, error) {
	in, err := c.Fetch(ctx)
	if err != nil {
		return nil, Report{}, err
	}
	resp, report := s.Solve(ctx, in)
	if err := ctx.Err(); err != nil {
		return nil, report, err
	}
	reply, err := c.Submit(ctx, resp)
	return reply, report, err
}
