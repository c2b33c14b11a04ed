package twclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/teamwork/internal/client"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// EnvAPIKey is the environment variable read by NewFromEnv.
const EnvAPIKey = "TEAMWORK_API_KEY"

// New creates a new teamwork.tf API client.
// The config is copied; the caller's value is not modified.
func New(config *teamwork.Config) (teamwork.Client, error) {
	if config == nil {
		return nil, teamwork.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, teamwork.ErrAPIKeyRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithKey creates a client with default settings for apiKey.
func NewWithKey(apiKey string) (teamwork.Client, error) {
	return New(&teamwork.Config{APIKey: apiKey})
}

// NewFromEnv creates a client with the key in TEAMWORK_API_KEY.
func NewFromEnv() (teamwork.Client, error) {
	return NewWithKey(os.Getenv(EnvAPIKey))
}

// normalizeBaseURL adds a scheme when missing and a trailing slash.
// An empty value is kept so the default endpoint applies.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return ""
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return strings.TrimSuffix(baseURL, "/") + "/"
}
