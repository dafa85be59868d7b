package openlibrary

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

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://openlibrary.org"
	DefaultUserAgent = "bookcatalog/1.0 (+https://openlibrary.org/developers/api)"
	DefaultTimeout   = 15 * time.Second

	maxBodyBytes = 4 << 20
)

// ErrMalformedPayload is returned when a works response is not a JSON object
// or carries a known field with the wrong type.
var ErrMalformedPayload = errors.New("openlibrary: malformed payload")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openlibrary: unexpected status code %d for %s", e.StatusCode, e.URL)
}

// WorkDetails matches works/{id}.json. Only the fields the catalog reads are
// typed; the full body is kept in Raw.
type WorkDetails struct {
	Key              string
	Title            string
	Type             string
	FirstPublishDate *string
	Location         *string
	Raw              json.RawMessage
}

// PublishDate returns first_publish_date when present and non-empty.
func (d *WorkDetails) PublishDate() (string, bool) {
	if d == nil || d.FirstPublishDate == nil || *d.FirstPublishDate == "" {
		return "", false
	}
	return *d.FirstPublishDate, true
}

// LocationPath returns the location field, or "" when absent.
func (d *WorkDetails) LocationPath() string {
	if d == nil || d.Location == nil {
		return ""
	}
	return *d.Location
}

type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// RPS limits outgoing requests per second. Zero or less disables the limiter.
	RPS float64
}

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	limit := rate.Inf
	if opts.RPS > 0 {
		limit = rate.Limit(opts.RPS)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		userAgent: opts.UserAgent,
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		limiter:   rate.NewLimiter(limit, 1),
	}
}

// GetWorkDetails fetches works/{workID}.json. Errors are returned as-is to the
// caller; there is no retry.
func (c *Client) GetWorkDetails(ctx context.Context, workID string) (*WorkDetails, error) {
	if strings.TrimSpace(workID) == "" {
		return nil, errors.New("openlibrary: empty work id")
	}

	u := fmt.Sprintf("%s/works/%s.json", c.baseURL, url.PathEscape(workID))

	body, err := c.rawGet(ctx, u)
	if err != nil {
		return nil, err
	}
	return DecodeWorkDetails(body)
}

// DecodeWorkDetails parses a works payload, rejecting anything that is not a
// JSON object.
func DecodeWorkDetails(body []byte) (*WorkDetails, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrMalformedPayload
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	d := &WorkDetails{Raw: json.RawMessage(trimmed)}

	var err error
	if d.FirstPublishDate, err = optionalString(fields, "first_publish_date"); err != nil {
		return nil, err
	}
	if d.Location, err = optionalString(fields, "location"); err != nil {
		return nil, err
	}
	if v, err := optionalString(fields, "key"); err == nil && v != nil {
		d.Key = *v
	}
	if v, err := optionalString(fields, "title"); err == nil && v != nil {
		d.Title = *v
	}
	if raw, ok := fields["type"]; ok {
		// type is {"key": "/type/work"} or {"key": "/type/redirect"}
		var t struct {
			Key string `json:"key"`
		}
		if json.Unmarshal(raw, &t) == nil {
			d.Type = t.Key
		}
	}
	return d, nil
}

func optionalString(fields map[string]json.RawMessage, name string) (*string, error) {
	raw, ok := fields[name]
	if !ok || string(raw) == "null" {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: field %q is not a string", ErrMalformedPayload, name)
	}
	return &s, nil
}

func (c *Client) rawGet(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openlibrary: get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
}
