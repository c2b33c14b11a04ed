package constants

import "time"

// API endpoint.
const (
	// DefaultBaseURL is the teamwork.tf API v1 root. Descriptors are appended to it.
	DefaultBaseURL = "https://teamwork.tf/api/v1/"

	// APIKeyParam is the query parameter carrying the API key.
	APIKeyParam = "key"

	// APIDocsURL is where API keys are issued.
	APIDocsURL = "https://teamwork.tf/api"

	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "teamwork-go"

	// ContentTypeJSON is the only representation requested from the API.
	ContentTypeJSON = "application/json"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Metrics.
const (
	// MetricsNamespace prefixes every exported metric.
	MetricsNamespace = "teamwork"

	// MetricsSubsystem groups the HTTP client metrics.
	MetricsSubsystem = "client"

	// UnknownEndpoint labels requests whose descriptor has no path segment.
	UnknownEndpoint = "unknown"

	// TransportErrorStatus labels requests that never produced an HTTP status.
	TransportErrorStatus = "error"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// Display.
const (
	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// NotAvailable is shown for empty table cells.
	NotAvailable = "N/A"

	// MaxLoggedBodyBytes caps the response body echoed into debug logs.
	MaxLoggedBodyBytes = 512
)

// Argument counts.
const (
	// MinimumArgumentCount is the argument count of KEY VALUE commands.
	MinimumArgumentCount = 2
)
