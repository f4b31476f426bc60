// authenticationhandler/auth_oauth.go
package authenticationhandler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mdmtools/jamf-locator/response"
	"go.uber.org/zap"
)

// OAuthResponse represents the response structure when obtaining an OAuth access token.
type OAuthResponse struct {
	AccessToken string `json:"access_token"`    // AccessToken is the token used in subsequent requests for authentication.
	ExpiresIn   int64  `json:"expires_in"`      // ExpiresIn specifies the duration in seconds after which the access token expires.
	TokenType   string `json:"token_type"`      // TokenType indicates the type of token, typically "Bearer".
	Error       string `json:"error,omitempty"` // Error contains details if an error occurs during token acquisition.
}

// obtainOAuthToken fetches an OAuth access token using the client-credentials
// grant. It first POSTs the credentials in the form body; on any failure it
// falls back to the same endpoint with the credentials moved into an HTTP
// Basic authorization header. Success is determined solely by the presence of
// an access_token string in the JSON body.
func (h *AuthTokenHandler) obtainOAuthToken(ctx context.Context) (string, error) {
	endpoint := h.baseURL + OAuthTokenEndpoint

	token, formErr := h.oauthTokenAttempt(ctx, endpoint, false)
	if formErr == nil {
		return token, nil
	}

	h.logger.Warn("OAuth form-body token fetch failed, retrying with Basic authorization",
		zap.String("endpoint", endpoint), zap.Error(formErr))

	token, basicErr := h.oauthTokenAttempt(ctx, endpoint, true)
	if basicErr == nil {
		return token, nil
	}

	h.logger.LogAuthTokenError("oauth_token_fetch", http.MethodPost, endpoint, authStatusCode(basicErr), basicErr)
	return "", basicErr
}

// oauthTokenAttempt performs a single POST against the OAuth token endpoint.
// With useBasicAuth false the client id and secret travel in the form body;
// with it true they travel in a Basic authorization header instead.
func (h *AuthTokenHandler) oauthTokenAttempt(ctx context.Context, endpoint string, useBasicAuth bool) (string, error) {
	data := url.Values{}
	data.Set("grant_type", "client_credentials")
	if !useBasicAuth {
		data.Set("client_id", h.credentials.ClientID)
		data.Set("client_secret", h.credentials.ClientSecret)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return "", &response.AuthError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if useBasicAuth {
		req.SetBasicAuth(h.credentials.ClientID, h.credentials.ClientSecret)
	}

	resp, err := h.http.Do(req)
	if err != nil {
		return "", &response.AuthError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &response.AuthError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &response.AuthError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var oauthResp OAuthResponse
	if err := json.Unmarshal(body, &oauthResp); err != nil {
		return "", &response.AuthError{StatusCode: resp.StatusCode, Body: string(body), Err: err}
	}

	if oauthResp.AccessToken == "" {
		return "", &response.AuthError{StatusCode: resp.StatusCode, Body: string(body),
			Err: errEmptyAccessToken}
	}

	return oauthResp.AccessToken, nil
}

// authStatusCode extracts the status code from an AuthError for logging.
func authStatusCode(err error) int {
	if authErr, ok := err.(*response.AuthError); ok {
		return authErr.StatusCode
	}
	return 0
}
