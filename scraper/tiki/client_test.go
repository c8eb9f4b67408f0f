package tiki

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tiki-sentiment-scraper/config"
	"tiki-sentiment-scraper/utils"
)

// newTestClient builds a Client against a test server with a single
// attempt and no retry delay, so failure paths return immediately.
func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	cfg := &config.Config{
		BaseURL:        baseURL,
		UserAgent:      "test-agent",
		MaxRetries:     1,
		RetryDelayMs:   1,
		RequestTimeout: 5000,
	}
	client, err := NewClient(cfg, utils.NewLogger())
	require.NoError(t, err)
	return client
}
