package tiki

import (
	"encoding/json"
	"fmt"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"

	"tiki-sentiment-scraper/config"
	"tiki-sentiment-scraper/utils"
)

const (
	productAPIPath = "/api/v2/products"
	reviewsAPIPath = "/api/v2/reviews"
)

// Client wraps one persistent HTTP session against the Tiki site. The
// same cookie jar and browser-like header set is reused for every call
// so the traffic resembles a normal browsing session.
type Client struct {
	http   *resty.Client
	retry  *utils.RetryConfig
	logger *utils.Logger

	baseURL   string
	render    bool
	chromeBin string
}

// NewClient builds a ready-to-use Client from config. The underlying
// session is owned by the Client; callers share one instance per run.
func NewClient(cfg *config.Config, logger *utils.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("tiki: create cookie jar: %w", err)
	}

	http := resty.New()
	http.SetBaseURL(cfg.BaseURL)
	http.SetCookieJar(jar)
	http.SetTimeout(time.Duration(cfg.RequestTimeout) * time.Millisecond)
	http.SetHeaders(map[string]string{
		"User-Agent":      cfg.UserAgent,
		"Accept-Language": "vi-VN,vi;q=0.9,en-US;q=0.8,en;q=0.7",
		"Accept":          "application/json, text/plain, */*",
		"Origin":          cfg.BaseURL,
		"Referer":         cfg.BaseURL + "/",
	})

	return &Client{
		http: http,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			Delay:       time.Duration(cfg.RetryDelayMs) * time.Millisecond,
			Logger:      logger,
		},
		logger:    logger,
		baseURL:   cfg.BaseURL,
		render:    cfg.CategoryRender,
		chromeBin: cfg.ChromeBin,
	}, nil
}

// StatusError reports a non-2xx response from the site.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.Code, e.URL)
}

// GetJSON issues a GET against path with the shared session headers and
// decodes the JSON body into out. Any failure (transport, non-2xx
// status or an undecodable body) is retried up to the configured
// attempt count before the final error is returned.
func (c *Client) GetJSON(path string, params map[string]string, out any) error {
	return c.retry.Do("GET "+path, func() error {
		res, err := c.http.R().SetQueryParams(params).Get(path)
		if err != nil {
			return err
		}
		if res.IsError() {
			return &StatusError{Code: res.StatusCode(), URL: res.Request.URL}
		}
		if err := json.Unmarshal(res.Body(), out); err != nil {
			return fmt.Errorf("decode body: %w", err)
		}
		return nil
	})
}

// GetHTML issues a GET against path and returns the raw response body.
func (c *Client) GetHTML(path string) (string, error) {
	var body string
	err := c.retry.Do("GET "+path, func() error {
		res, err := c.http.R().Get(path)
		if err != nil {
			return err
		}
		if res.IsError() {
			return &StatusError{Code: res.StatusCode(), URL: res.Request.URL}
		}
		body = string(res.Body())
		return nil
	})
	return body, err
}
