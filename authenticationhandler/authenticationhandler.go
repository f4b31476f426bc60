// authenticationhandler/authenticationhandler.go

/* The authenticationhandler package is dedicated to managing authentication
for the Jamf API client, with support for the two mutually exclusive
strategies the server offers: OAuth client credentials and the legacy
username/password bearer flow. It encapsulates choosing the strategy from the
provided credentials, fetching tokens, and caching them with proactive
refresh so concurrent callers share a single token fetch. */

package authenticationhandler

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/mdmtools/jamf-locator/logger"
	"golang.org/x/sync/singleflight"
)

// Authentication strategy identifiers.
const (
	AuthMethodOAuth  = "oauth2"    // OAuth client credentials against the Pro API.
	AuthMethodBearer = "basicauth" // Legacy username/password exchanged for a bearer token.
)

// Endpoint constants represent the URL suffixes used for Jamf API token interactions.
const (
	OAuthTokenEndpoint  = "/api/oauth/token"   // OAuthTokenEndpoint: The endpoint to obtain an OAuth token.
	BearerTokenEndpoint = "/api/v1/auth/token" // BearerTokenEndpoint: The endpoint to obtain a bearer token.
)

const (
	// TokenSkew is the safety margin subtracted from a token's expiry so a
	// refresh happens before the server-side expiration.
	TokenSkew = 60 * time.Second

	// AssumedTokenLifetime is the fixed lifetime assigned to every fetched
	// token. The server's expires_in field is deliberately not parsed; if the
	// real lifetime is shorter, the 401 retry path forces a refresh.
	AssumedTokenLifetime = 25 * time.Minute
)

// ClientCredentials holds the credentials necessary for authentication.
type ClientCredentials struct {
	Username     string
	Password     string
	ClientID     string
	ClientSecret string
}

// DetermineAuthMethod determines the authentication method based on the provided credentials.
// OAuth is preferred over the legacy bearer flow when both pairs are complete.
// It returns an error if neither credential pair is complete.
func DetermineAuthMethod(credentials ClientCredentials) (string, error) {
	if credentials.ClientID != "" && credentials.ClientSecret != "" {
		return AuthMethodOAuth, nil
	}
	if credentials.Username != "" && credentials.Password != "" {
		return AuthMethodBearer, nil
	}
	return "", errors.New("no complete credential pair provided: set client id and secret, or username and password")
}

// AuthTokenHandler manages the cached authentication token for one strategy.
// All callers within the process share one handler per strategy, so the cache
// and its in-flight fetch are shared too.
type AuthTokenHandler struct {
	baseURL           string
	authMethod        string
	credentials       ClientCredentials
	http              *http.Client
	logger            logger.Logger
	hideSensitiveData bool

	mu      sync.Mutex // guards token and expires
	token   string
	expires time.Time

	// group collapses concurrent token fetches into a single in-flight
	// request whose result every waiter receives.
	group singleflight.Group
}

// NewAuthTokenHandler creates a new instance of AuthTokenHandler.
func NewAuthTokenHandler(baseURL, authMethod string, credentials ClientCredentials, httpClient *http.Client, log logger.Logger, hideSensitiveData bool) *AuthTokenHandler {
	return &AuthTokenHandler{
		baseURL:           baseURL,
		authMethod:        authMethod,
		credentials:       credentials,
		http:              httpClient,
		logger:            log,
		hideSensitiveData: hideSensitiveData,
	}
}

// AuthMethod reports which authentication strategy this handler uses.
func (h *AuthTokenHandler) AuthMethod() string {
	return h.authMethod
}
