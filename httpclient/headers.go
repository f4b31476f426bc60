// httpclient/headers.go
package httpclient

import (
	"net/http"
	"strings"

	"github.com/mdmtools/jamf-locator/version"
)

// setRequestHeaders applies the standard header set for a Jamf API request:
// bearer authorization, User-Agent, and content negotiation matching the
// endpoint family.
func (c *Client) setRequestHeaders(req *http.Request, endpoint, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Accept", acceptHeaderFor(endpoint))

	if req.Body != nil {
		req.Header.Set("Content-Type", contentTypeHeaderFor(endpoint))
	}
}

// contentTypeHeaderFor determines the appropriate Content-Type header for a given API endpoint.
// Classic API endpoints under /JSSResource take XML; Pro API endpoints under /api take JSON.
func contentTypeHeaderFor(endpoint string) string {
	if strings.HasPrefix(endpoint, "/JSSResource") {
		return "application/xml" // Classic API uses XML
	}
	return "application/json" // Pro API uses JSON
}

// acceptHeaderFor mirrors the content-type policy for response negotiation.
func acceptHeaderFor(endpoint string) string {
	if strings.HasPrefix(endpoint, "/JSSResource") {
		return "application/xml"
	}
	return "application/json"
}
