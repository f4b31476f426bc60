// response/status.go
package response

import (
	"fmt"
	"net/http"
)

// TranslateStatusCode provides a human-readable message for common HTTP status
// codes the Jamf API returns. Used as the default APIError message when the
// response body yields nothing better.
func TranslateStatusCode(statusCode int) string {
	messages := map[int]string{
		http.StatusBadRequest:          "Bad request. Verify the request syntax and body.",
		http.StatusUnauthorized:        "Authentication failed. The token is missing, expired, or invalid.",
		http.StatusForbidden:           "Access forbidden. The authenticated client lacks the required privileges.",
		http.StatusNotFound:            "Resource not found.",
		http.StatusConflict:            "Conflict. The resource state prevented the request.",
		http.StatusTooManyRequests:     "Rate limit exceeded. Try again later.",
		http.StatusInternalServerError: "Internal server error. Retry the request or check the server logs.",
		http.StatusBadGateway:          "Bad gateway. The server received an invalid upstream response.",
		http.StatusServiceUnavailable:  "Service unavailable. The server cannot handle the request right now.",
	}

	if msg, ok := messages[statusCode]; ok {
		return msg
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return fmt.Sprintf("Unexpected status code: %d", statusCode)
}
