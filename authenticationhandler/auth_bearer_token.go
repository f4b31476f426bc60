// authenticationhandler/auth_bearer_token.go
package authenticationhandler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/mdmtools/jamf-locator/response"
)

var (
	errEmptyAccessToken = errors.New("token endpoint returned no access_token field")
	errEmptyBearerToken = errors.New("token endpoint returned no token field")
)

// BearerTokenResponse represents the structure of a legacy token response from the API.
type BearerTokenResponse struct {
	Token   string `json:"token"`
	Expires string `json:"expires"`
}

// obtainBearerToken fetches a bearer token via the legacy flow: an empty JSON
// POST to the auth endpoint with HTTP Basic authorization. Success requires
// HTTP 200 and a token string in the JSON body.
func (h *AuthTokenHandler) obtainBearerToken(ctx context.Context) (string, error) {
	endpoint := h.baseURL + BearerTokenEndpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader("{}"))
	if err != nil {
		return "", &response.AuthError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(h.credentials.Username, h.credentials.Password)

	resp, err := h.http.Do(req)
	if err != nil {
		h.logger.LogAuthTokenError("bearer_token_fetch", http.MethodPost, endpoint, 0, err)
		return "", &response.AuthError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &response.AuthError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		h.logger.LogAuthTokenError("bearer_token_fetch", http.MethodPost, endpoint, resp.StatusCode, nil)
		return "", &response.AuthError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tokenResp BearerTokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", &response.AuthError{StatusCode: resp.StatusCode, Body: string(body), Err: err}
	}

	if tokenResp.Token == "" {
		return "", &response.AuthError{StatusCode: resp.StatusCode, Body: string(body), Err: errEmptyBearerToken}
	}

	return tokenResp.Token, nil
}
