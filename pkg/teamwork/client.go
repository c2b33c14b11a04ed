package teamwork

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/mo"
)

// Response is the raw outcome of a single request to the API.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Requester performs one authenticated GET for an endpoint descriptor such as
// "news" or "quickplay/server?ip=1.2.3.4". The credential is appended by the
// implementation; callers never pass it.
//
// A Requester that also implements ExecuteDefaulter contributes default
// options to every Execute call made through it.
type Requester interface {
	Request(ctx context.Context, descriptor string) (*Response, error)
}

// ExecuteDefaulter is implemented by Requesters that carry default Execute options.
type ExecuteDefaulter interface {
	ExecuteDefaults() []ExecuteOption
}

// NewsClient provides access to the news feed.
type NewsClient interface {
	Overview(ctx context.Context) (mo.Option[[]News], error)
	Get(ctx context.Context, hash string) (mo.Option[News], error)
	ByPage(ctx context.Context, page int) (mo.Option[[]News], error)
	ByProvider(ctx context.Context, provider string) (mo.Option[[]News], error)
}

// CreatorsClient provides access to content creator lookups.
type CreatorsClient interface {
	BySteamID(ctx context.Context, steamID string) (mo.Option[[]Creator], error)
}

// QuickplayClient provides access to game modes and the servers that host them.
type QuickplayClient interface {
	GameModes(ctx context.Context) (mo.Option[[]GameMode], error)
	GameMode(ctx context.Context, mode string) (mo.Option[GameMode], error)
	GameModeServers(ctx context.Context, mode string) (mo.Option[[]Server], error)
	ServerInfo(ctx context.Context, ip string, port int) (mo.Option[[]Server], error)
}

// CommunityClient provides access to community server providers.
type CommunityClient interface {
	Provider(ctx context.Context, provider string) (mo.Option[Provider], error)
	Servers(ctx context.Context, provider string) (mo.Option[[]Server], error)
	Stats(ctx context.Context, provider string) (mo.Option[ProviderStats], error)
}

// CompetitiveClient provides access to competitive league providers.
type CompetitiveClient interface {
	Provider(ctx context.Context, provider string) (mo.Option[CompetitiveProvider], error)
	Stats(ctx context.Context, provider string) (mo.Option[CompetitiveProviderStats], error)
}

// ServerListsClient provides access to user curated server lists.
type ServerListsClient interface {
	List(ctx context.Context) (mo.Option[[]ServerList], error)
	Get(ctx context.Context, id int) (mo.Option[ServerList], error)
	Servers(ctx context.Context, id int) (mo.Option[[]Server], error)
}

// MapsClient provides access to map statistics and imagery.
type MapsClient interface {
	Stats(ctx context.Context, name string) (mo.Option[Map], error)
	StatsForAll(ctx context.Context, query string) ([]MapStatsResult, error)
	Thumbnail(ctx context.Context, name string) (mo.Option[MapThumbnail], error)
	ThumbnailContext(ctx context.Context, name string) (mo.Option[ThumbnailContext], error)
	Search(ctx context.Context, term string) (mo.Option[[]Map], error)
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	News() NewsClient
	Creators() CreatorsClient
	Quickplay() QuickplayClient
	Community() CommunityClient
	Competitive() CompetitiveClient
	ServerLists() ServerListsClient
	Maps() MapsClient
}

// Client is a configured teamwork.tf API client. It can be passed to Execute
// directly for endpoints without a dedicated method.
type Client interface {
	Requester
	ResourceClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a teamwork.Client.
//
// Only APIKey is required. Every call is a single request: there are no
// retries, no response cache and no client side rate limiting. Per-call
// deadlines are controlled through the context passed to each method;
// HTTPTimeout bounds calls made with a context that has none.
type Config struct {
	// APIKey: the teamwork.tf API key, appended to every request as ?key=.
	APIKey string

	// BaseURL: overrides the API root (default "https://teamwork.tf/api/v1/").
	// twclient.New adds "https://" when no scheme is present and ensures a
	// trailing slash.
	BaseURL string
	// HTTPTimeout: transport timeout for a single request. Defaults to 30s.
	HTTPTimeout time.Duration
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and the decoder.
	Logger Logger
	// StrictDecoding: report fields that fail to convert as errors instead of
	// skipping them.
	StrictDecoding bool
	// MetricsRegisterer: when set, request counters and latency histograms are
	// registered with it.
	MetricsRegisterer prometheus.Registerer
	// HTTPClient: optional base client whose Transport is reused.
	HTTPClient *http.Client
}
