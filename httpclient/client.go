// httpclient/client.go
/* The httpclient package provides the HTTP client used to talk to a Jamf
server. It resolves the authentication strategy from the provided
credentials, owns the shared token handler for that strategy, and executes
requests with a valid bearer token attached. The client focuses on the Jamf
API's behaviors: 401 means refresh-and-retry-once, 403 carries a privilege
hint, and Classic (/JSSResource) endpoints speak XML while Pro (/api)
endpoints speak JSON. */
package httpclient

import (
	"net/http"
	"net/url"
	"time"

	"github.com/mdmtools/jamf-locator/authenticationhandler"
	"github.com/mdmtools/jamf-locator/logger"
	"github.com/mdmtools/jamf-locator/response"
	"go.uber.org/zap"
)

const defaultTimeout = 60 * time.Second

// Client executes authenticated requests against one Jamf instance.
type Client struct {
	config ClientConfig
	http   *http.Client
	auth   *authenticationhandler.AuthTokenHandler

	Logger logger.Logger
}

// ClientConfig holds the options for building a Client.
type ClientConfig struct {
	// BaseURL is the root of the Jamf instance, e.g. https://acme.jamfcloud.com.
	BaseURL string

	// Auth carries one complete credential pair. OAuth is preferred when both
	// pairs are present.
	Auth authenticationhandler.ClientCredentials

	// Log
	LogLevel          string
	LogOutputFormat   string // "json" for JSON logs, anything else for console output.
	HideSensitiveData bool

	// CustomTimeout bounds every HTTP call, token fetches included.
	CustomTimeout time.Duration
}

// BuildClient creates a new HTTP client with the provided configuration.
// It fails with an InvalidConfigError when the base URL is missing or
// malformed, or when no complete credential pair is present.
func BuildClient(config ClientConfig) (*Client, error) {
	log := logger.BuildLogger(logger.ParseLogLevelFromString(config.LogLevel), config.LogOutputFormat)

	if config.BaseURL == "" {
		return nil, &response.InvalidConfigError{Field: "BaseURL", Reason: "missing"}
	}
	parsed, err := url.Parse(config.BaseURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, &response.InvalidConfigError{Field: "BaseURL", Reason: "not a well-formed URL"}
	}

	authMethod, err := authenticationhandler.DetermineAuthMethod(config.Auth)
	if err != nil {
		return nil, &response.InvalidConfigError{Field: "Auth", Reason: err.Error()}
	}

	if config.CustomTimeout <= 0 {
		config.CustomTimeout = defaultTimeout
	}

	httpClient := &http.Client{
		Timeout: config.CustomTimeout,
	}

	client := &Client{
		config: config,
		http:   httpClient,
		auth: authenticationhandler.NewAuthTokenHandler(
			config.BaseURL,
			authMethod,
			config.Auth,
			httpClient,
			log,
			config.HideSensitiveData,
		),
		Logger: log,
	}

	log.Debug("New API client initialized",
		zap.String("base_url", config.BaseURL),
		zap.String("auth_method", authMethod),
		zap.Duration("timeout", config.CustomTimeout),
		zap.Bool("hide_sensitive_data", config.HideSensitiveData),
	)

	return client, nil
}

// HasOAuth reports whether the client resolved to the OAuth strategy. When
// true, all resource operations use the modern Pro API exclusively.
func (c *Client) HasOAuth() bool {
	return c.auth.AuthMethod() == authenticationhandler.AuthMethodOAuth
}

// BaseURL returns the configured instance root.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}
