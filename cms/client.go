package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/Sirupsen/logrus"
	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "site",
			Subsystem: "cms",
			Name:      "requests_total",
			Help:      "Total number of CMS requests",
		},
		[]string{"endpoint", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "site",
			Subsystem: "cms",
			Name:      "request_duration_seconds",
			Help:      "Duration of CMS requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

type Options struct {
	URL        string
	MediaURL   string
	Token      string
	Timeout    time.Duration
	Retries    uint
	RetryDelay time.Duration
}

// Client talks to the headless CMS REST API.
type Client struct {
	baseURL    string
	mediaURL   string
	token      string
	retries    uint
	retryDelay time.Duration
	http       *http.Client
}

// StatusError is a non 2xx answer of the CMS.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("cms responded %d", e.Code)
	}
	return fmt.Sprintf("cms responded %d: %s", e.Code, e.Message)
}

func (e *StatusError) Temporary() bool {
	return e.Code >= http.StatusInternalServerError || e.Code == http.StatusTooManyRequests
}

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	mediaURL := opts.MediaURL
	if mediaURL == "" {
		mediaURL = originOf(opts.URL)
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.URL, "/"),
		mediaURL:   strings.TrimRight(mediaURL, "/"),
		token:      opts.Token,
		retries:    opts.Retries,
		retryDelay: opts.RetryDelay,
		http:       &http.Client{Timeout: opts.Timeout},
	}
}

func (c *Client) MediaURL() string {
	return c.mediaURL
}

// Ping checks the CMS answers at all. Any HTTP response counts.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return errors.Wrap(err, "Ping::NewRequest")
	}
	c.authorize(req)
	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "Ping::Do")
	}
	res.Body.Close()
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, v interface{}) error {
	u := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	body, err := c.do(ctx, endpoint, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrapf(err, "get::Unmarshal %s", endpoint)
	}
	return nil
}

func (c *Client) post(ctx context.Context, endpoint string, payload interface{}, v interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "post::Marshal %s", endpoint)
	}
	body, err := c.do(ctx, endpoint, http.MethodPost, c.baseURL+"/"+endpoint, data)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrapf(err, "post::Unmarshal %s", endpoint)
	}
	return nil
}

// do runs the request with retries. Transport errors and 5xx are retried,
// other statuses are returned at once as *StatusError.
func (c *Client) do(ctx context.Context, endpoint, method, u string, payload []byte) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			var err error
			body, err = c.once(ctx, endpoint, method, u, payload)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.retries+1),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			if se, ok := err.(*StatusError); ok {
				return se.Temporary()
			}
			return true
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Warnf("cms %s %s attempt %d failed: %s", method, endpoint, n+1, err.Error())
		}),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) once(ctx context.Context, endpoint, method, u string, payload []byte) ([]byte, error) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, errors.Wrapf(err, "NewRequest %s", endpoint)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	res, err := c.http.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, errors.Wrapf(err, "%s %s", method, endpoint)
	}
	defer res.Body.Close()
	requestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", res.StatusCode)).Inc()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "ReadAll %s", endpoint)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		se := &StatusError{Code: res.StatusCode}
		var er errorResponse
		if json.Unmarshal(body, &er) == nil {
			se.Message = er.Error.Message
		}
		return nil, se
	}
	return body, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// AbsoluteURL resolves a media path returned by the CMS against the media origin.
func (c *Client) AbsoluteURL(u string) string {
	return absoluteURL(c.mediaURL, u)
}

func originOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(strings.TrimRight(raw, "/"), "/api")
	}
	return u.Scheme + "://" + u.Host
}
