// httpclient/request.go
package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/mdmtools/jamf-locator/response"
	"go.uber.org/zap"
)

// DoRequest executes an HTTP request against the given endpoint with a valid
// bearer token attached, and returns the raw response body on success.
//
// On 401 it fetches exactly one fresh token, bypassing the cache's validity
// check, and retries the original request once. A second 401 surfaces as an
// APIError like any other error status. 403 responses carry a privilege hint
// for the request path. Connectivity failures surface as TransportError.
func (c *Client) DoRequest(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	log := c.Logger

	token, err := c.auth.Token(ctx)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	log.Debug("Executing request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("endpoint", endpoint),
	)

	resp, raw, err := c.execute(ctx, method, endpoint, body, token)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		log.Warn("Received 401, refreshing token and retrying once",
			zap.String("request_id", requestID),
			zap.String("endpoint", endpoint),
		)

		token, err = c.auth.RefreshToken(ctx)
		if err != nil {
			return nil, err
		}

		resp, raw, err = c.execute(ctx, method, endpoint, body, token)
		if err != nil {
			return nil, err
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Debug("Request succeeded",
			zap.String("request_id", requestID),
			zap.Int("status_code", resp.StatusCode),
		)
		return raw, nil
	}

	apiErr := response.NewAPIError(resp, raw)
	log.LogError("request_error", method, c.config.BaseURL+endpoint, resp.StatusCode, apiErr.Message, apiErr, apiErr.RawResponse)
	return nil, apiErr
}

// execute performs one HTTP round trip and drains the response body. Requests
// are rebuilt from the body bytes on each call so the 401 retry reuses the
// same payload.
func (c *Client) execute(ctx context.Context, method, endpoint string, body []byte, token string) (*http.Response, []byte, error) {
	fullURL := c.config.BaseURL + endpoint

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, nil, &response.TransportError{Method: method, URL: fullURL, Err: err}
	}

	c.setRequestHeaders(req, endpoint, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, &response.TransportError{Method: method, URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &response.TransportError{Method: method, URL: fullURL, Err: err}
	}

	return resp, raw, nil
}
