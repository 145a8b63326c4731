package netskope

// Config holds configuration for the cloud inventory client.
type Config struct {
	// Endpoint is the full URL listing private applications.
	Endpoint string `mapstructure:"endpoint" default:""`

	// AuthHeader is the request header carrying the API token.
	AuthHeader string `mapstructure:"auth_header" default:"Netskope-Api-Token"`

	// Token is the API token value, usually supplied via NETSKOPE_TOKEN.
	Token string `mapstructure:"token" default:""`

	// TimeoutSeconds bounds connection setup and response waits.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`

	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify" default:"false"`

	// PaginationParam is the query parameter carrying the page cursor
	// (e.g. "cursor", "page"). Empty means single-page fetching.
	PaginationParam string `mapstructure:"pagination_param" default:""`

	// NextCursorPath is the dotted path to the next cursor inside a page,
	// e.g. "meta.next". Empty means single-page fetching.
	NextCursorPath string `mapstructure:"next_cursor_path" default:""`

	// PerPageParam and PerPageValue request larger pages when the API
	// supports it, e.g. "limit" and "1000".
	PerPageParam string `mapstructure:"per_page_param" default:""`
	PerPageValue string `mapstructure:"per_page_value" default:""`

	// MaxPages caps the pagination loop against cursor loops.
	MaxPages int `mapstructure:"max_pages" default:"50"`

	// RequestsPerSecond paces page requests.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"5"`

	// CacheTTLSeconds is the time-to-live of the in-memory inventory cache
	// used by the HTTP surface. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"60"`
}
