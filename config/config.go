// config/config.go
package config

import (
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/mdmtools/jamf-locator/authenticationhandler"
	"github.com/mdmtools/jamf-locator/httpclient"
	"github.com/mdmtools/jamf-locator/jamfpro"
	"github.com/mdmtools/jamf-locator/response"
)

// Config holds all environment-based configuration for the client. It mirrors
// the managed-configuration surface: a flat key/value provider supplying the
// server, one credential pair, the managed device, and the optional
// extension-attribute stamp.
type Config struct {
	// BaseURL is the Jamf instance root, e.g. https://acme.jamfcloud.com. Required.
	BaseURL string `env:"JAMF_BASE_URL"`

	// OAuth client-credentials pair. Preferred when complete.
	ClientID     string `env:"JAMF_CLIENT_ID"`
	ClientSecret string `env:"JAMF_CLIENT_SECRET"`

	// Legacy username/password pair, used when the OAuth pair is incomplete.
	Username string `env:"JAMF_USERNAME"`
	Password string `env:"JAMF_PASSWORD"`

	// DeviceID identifies the managed device for read and update operations.
	DeviceID string `env:"JAMF_DEVICE_ID"`

	// Extension-attribute stamp settings. Stamping is disabled when EAName is empty.
	EAName              string `env:"JAMF_EA_NAME"`
	EAType              string `env:"JAMF_EA_TYPE" envDefault:"STRING"`
	EACollectionAllowed bool   `env:"JAMF_EA_COLLECTION_ALLOWED" envDefault:"false"`
	EADateFormat        string `env:"JAMF_EA_DATE_FORMAT"`

	// Log settings.
	LogLevel          string `env:"LOG_LEVEL" envDefault:"LogLevelInfo"`
	LogFormat         string `env:"LOG_FORMAT" envDefault:"console"`
	HideSensitiveData bool   `env:"HIDE_SENSITIVE_DATA" envDefault:"true"`

	// HTTPTimeout bounds every HTTP call, token fetches included.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"60s"`
}

// Load reads configuration from the environment, picking up a local .env file
// when present, and validates it. Validation fails fast with an
// InvalidConfigError; nothing is retried.
func Load() (*Config, error) {
	_ = godotenv.Load() // best effort; absence of .env is the normal case

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return &response.InvalidConfigError{Field: "JAMF_BASE_URL", Reason: "missing"}
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return &response.InvalidConfigError{Field: "JAMF_BASE_URL", Reason: "not a well-formed URL"}
	}

	oauthComplete := c.ClientID != "" && c.ClientSecret != ""
	legacyComplete := c.Username != "" && c.Password != ""
	if !oauthComplete && !legacyComplete {
		return &response.InvalidConfigError{
			Field:  "credentials",
			Reason: "no complete credential pair: set JAMF_CLIENT_ID and JAMF_CLIENT_SECRET, or JAMF_USERNAME and JAMF_PASSWORD",
		}
	}

	return nil
}

// ClientConfig translates the loaded configuration into the HTTP client's options.
func (c *Config) ClientConfig() httpclient.ClientConfig {
	return httpclient.ClientConfig{
		BaseURL: c.BaseURL,
		Auth: authenticationhandler.ClientCredentials{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			Username:     c.Username,
			Password:     c.Password,
		},
		LogLevel:          c.LogLevel,
		LogOutputFormat:   c.LogFormat,
		HideSensitiveData: c.HideSensitiveData,
		CustomTimeout:     c.HTTPTimeout,
	}
}

// EASettings returns the extension-attribute stamp settings, or nil when
// stamping is not configured.
func (c *Config) EASettings() *jamfpro.ExtensionAttributeSettings {
	if c.EAName == "" {
		return nil
	}
	return &jamfpro.ExtensionAttributeSettings{
		Name:              c.EAName,
		Type:              c.EAType,
		CollectionAllowed: c.EACollectionAllowed,
		DateFormat:        c.EADateFormat,
	}
}
