// authenticationhandler/auth_token_management.go
package authenticationhandler

import (
	"context"
	"time"

	"github.com/mdmtools/jamf-locator/redact"
	"go.uber.org/zap"
)

// Token returns a valid bearer token, fetching one if the cache is empty or
// within TokenSkew of expiry. The common path returns the cached value with
// no network call. When a fetch is already in flight, the caller awaits that
// fetch instead of starting a second one.
func (h *AuthTokenHandler) Token(ctx context.Context) (string, error) {
	h.mu.Lock()
	if h.token != "" && time.Until(h.expires) > TokenSkew {
		token := h.token
		h.mu.Unlock()
		return token, nil
	}
	h.mu.Unlock()

	return h.refresh(ctx)
}

// RefreshToken fetches a fresh token regardless of the cached token's
// validity. This is the 401 path: the server has rejected a token the cache
// still considers valid. Concurrent forced refreshes still collapse into a
// single fetch through the shared in-flight slot.
func (h *AuthTokenHandler) RefreshToken(ctx context.Context) (string, error) {
	return h.refresh(ctx)
}

// refresh performs the de-duplicated token fetch. All concurrent callers
// subscribe to one in-flight fetch and receive its single result, token or
// error. The in-flight slot clears when the fetch resolves either way.
func (h *AuthTokenHandler) refresh(ctx context.Context) (string, error) {
	v, err, shared := h.group.Do("token", func() (interface{}, error) {
		token, fetchErr := h.fetchToken(ctx)
		if fetchErr != nil {
			return nil, fetchErr
		}

		h.mu.Lock()
		h.token = token
		h.expires = time.Now().Add(AssumedTokenLifetime)
		h.mu.Unlock()

		h.logger.Debug("Token refreshed",
			zap.String("auth_method", h.authMethod),
			zap.String("token", redact.SensitiveValue(h.hideSensitiveData, "Token", token)),
			zap.Duration("assumed_lifetime", AssumedTokenLifetime),
		)
		return token, nil
	})
	if err != nil {
		return "", err
	}
	if shared {
		h.logger.Debug("Token fetch shared with concurrent caller", zap.String("auth_method", h.authMethod))
	}
	return v.(string), nil
}

// fetchToken dispatches to the fetch strategy for this handler's auth method.
func (h *AuthTokenHandler) fetchToken(ctx context.Context) (string, error) {
	if h.authMethod == AuthMethodOAuth {
		return h.obtainOAuthToken(ctx)
	}
	return h.obtainBearerToken(ctx)
}
