package client

import (
	"context"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// Client implements the teamwork.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     teamwork.Logger
	execOpts   []teamwork.ExecuteOption

	// Resource clients
	news        teamwork.NewsClient
	creators    teamwork.CreatorsClient
	quickplay   teamwork.QuickplayClient
	community   teamwork.CommunityClient
	competitive teamwork.CompetitiveClient
	serverLists teamwork.ServerListsClient
	maps        teamwork.MapsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *teamwork.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.MetricsRegisterer != nil {
		httpOpts = append(httpOpts, http.WithMetrics(config.MetricsRegisterer))
	}

	return httpOpts
}

// createExecuteOptions builds the defaults every request through the client uses.
func createExecuteOptions(config *teamwork.Config) []teamwork.ExecuteOption {
	execOpts := []teamwork.ExecuteOption{}

	if config.Logger != nil {
		execOpts = append(execOpts, teamwork.WithLogger(config.Logger))
	}

	if config.StrictDecoding {
		execOpts = append(execOpts, teamwork.WithStrictDecoding())
	}

	return execOpts
}

// New creates a new teamwork.tf API client.
func New(config *teamwork.Config) (*Client, error) {
	if config == nil {
		return nil, teamwork.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, teamwork.ErrAPIKeyRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, config.APIKey, createHTTPClientOptions(config)...)

	logger := config.Logger
	if logger == nil {
		logger = teamwork.NopLogger()
	}

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
		execOpts:   createExecuteOptions(config),
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.news = NewNewsClient(c)
	c.creators = NewCreatorsClient(c)
	c.quickplay = NewQuickplayClient(c)
	c.community = NewCommunityClient(c)
	c.competitive = NewCompetitiveClient(c)
	c.serverLists = NewServerListsClient(c)
	c.maps = NewMapsClient(c, c.logger)
}

// Request implements teamwork.Requester.
func (c *Client) Request(ctx context.Context, descriptor string) (*teamwork.Response, error) {
	return c.httpClient.Request(ctx, descriptor)
}

// ExecuteDefaults implements teamwork.ExecuteDefaulter.
func (c *Client) ExecuteDefaults() []teamwork.ExecuteOption {
	return c.execOpts
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Resource client accessors

// News implements teamwork.Client.News.
func (c *Client) News() teamwork.NewsClient {
	return c.news
}

// Creators implements teamwork.Client.Creators.
func (c *Client) Creators() teamwork.CreatorsClient {
	return c.creators
}

// Quickplay implements teamwork.Client.Quickplay.
func (c *Client) Quickplay() teamwork.QuickplayClient {
	return c.quickplay
}

// Community implements teamwork.Client.Community.
func (c *Client) Community() teamwork.CommunityClient {
	return c.community
}

// Competitive implements teamwork.Client.Competitive.
func (c *Client) Competitive() teamwork.CompetitiveClient {
	return c.competitive
}

// ServerLists implements teamwork.Client.ServerLists.
func (c *Client) ServerLists() teamwork.ServerListsClient {
	return c.serverLists
}

// Maps implements teamwork.Client.Maps.
func (c *Client) Maps() teamwork.MapsClient {
	return c.maps
}
