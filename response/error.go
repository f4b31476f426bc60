// response/error.go
// This package provides the typed error taxonomy for the client and utilities
// for extracting human-readable messages from API error responses.
package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html"
)

// InvalidConfigError indicates required configuration is absent or malformed.
// Construction fails immediately; nothing is retried.
type InvalidConfigError struct {
	Field  string // The configuration field at fault.
	Reason string // Why the field was rejected.
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// AuthError indicates the token endpoint returned a non-200 status or an
// unparseable/incomplete body. Not retried beyond the OAuth two-strategy fallback.
type AuthError struct {
	StatusCode int    // HTTP status from the token endpoint, 0 for transport failures.
	Body       string // Response body excerpt for diagnosis.
	Err        error  // Underlying error, if any.
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %v", e.Err)
	}
	return fmt.Sprintf("authentication failed: status %d: %s", e.StatusCode, e.Body)
}

func (e *AuthError) Unwrap() error { return e.Err }

// TransportError wraps a connectivity-level failure (DNS, TLS, timeout).
// The client does not retry these; the caller may retry the whole operation.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError indicates a name-existence check failed. The message embeds
// the currently valid set so the caller can present correction options.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// APIError represents an api error response from a resource endpoint.
type APIError struct {
	StatusCode  int    // HTTP status code
	Method      string // HTTP method used for the request
	URL         string // The URL of the HTTP request
	Message     string // Summary of the error extracted from the response body
	Hint        string // Privilege hint, populated for 403 responses
	RawResponse string // Raw response body for debugging
}

// Error returns a string representation of the APIError, making it compatible with the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Hint != "" {
		return fmt.Sprintf("API error: status %d: %s (%s)", e.StatusCode, msg, e.Hint)
	}
	return fmt.Sprintf("API error: status %d: %s", e.StatusCode, msg)
}

// NewAPIError builds an APIError from an HTTP error response, extracting a
// message from the body according to its content type.
func NewAPIError(resp *http.Response, body []byte) *APIError {
	apiError := &APIError{
		StatusCode:  resp.StatusCode,
		Message:     TranslateStatusCode(resp.StatusCode),
		RawResponse: string(body),
	}
	if resp.Request != nil {
		apiError.Method = resp.Request.Method
		apiError.URL = resp.Request.URL.String()
	}

	mimeType, _ := parseHeader(resp.Header.Get("Content-Type"))
	switch mimeType {
	case "application/json":
		parseJSONResponse(body, apiError)
	case "application/xml", "text/xml":
		parseXMLResponse(body, apiError)
	case "text/html":
		parseHTMLResponse(body, apiError)
	case "text/plain":
		parseTextResponse(body, apiError)
	}

	if resp.StatusCode == http.StatusForbidden && resp.Request != nil {
		apiError.Hint = PrivilegeHint(resp.Request.URL.Path)
	}

	return apiError
}

// jamfErrorBody mirrors the JSON error envelope the Jamf Pro API returns.
type jamfErrorBody struct {
	HTTPStatus int    `json:"httpStatus,omitempty"`
	Message    string `json:"message,omitempty"`
	Errors     []struct {
		Code        string `json:"code,omitempty"`
		Field       string `json:"field,omitempty"`
		Description string `json:"description,omitempty"`
	} `json:"errors,omitempty"`
}

// parseJSONResponse attempts to parse the JSON error envelope and update the APIError structure.
func parseJSONResponse(body []byte, apiError *APIError) {
	var parsed jamfErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return
	}

	var messages []string
	if parsed.Message != "" {
		messages = append(messages, parsed.Message)
	}
	for _, e := range parsed.Errors {
		switch {
		case e.Description != "" && e.Field != "":
			messages = append(messages, fmt.Sprintf("%s: %s", e.Field, e.Description))
		case e.Description != "":
			messages = append(messages, e.Description)
		case e.Code != "":
			messages = append(messages, e.Code)
		}
	}

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	}
}

// parseTextResponse updates the APIError structure based on a plain text error response.
func parseTextResponse(body []byte, apiError *APIError) {
	text := strings.TrimSpace(string(body))
	if text != "" {
		apiError.Message = text
	}
}

// parseXMLResponse dynamically parses XML error responses and accumulates potential error messages.
func parseXMLResponse(body []byte, apiError *APIError) {
	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return
	}

	var messages []string
	var traverse func(*xmlquery.Node)
	traverse = func(n *xmlquery.Node) {
		if n.Type == xmlquery.TextNode && strings.TrimSpace(n.Data) != "" {
			messages = append(messages, strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	}
}

// parseHTMLResponse extracts meaningful information from an HTML error response,
// concatenating all text within <p> tags. Jamf's Tomcat front end renders some
// failures as full HTML pages.
func parseHTMLResponse(body []byte, apiError *APIError) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return
	}

	var messages []string
	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			var pContent strings.Builder
			var collect func(*html.Node)
			collect = func(c *html.Node) {
				if c.Type == html.TextNode {
					pContent.WriteString(strings.TrimSpace(c.Data) + " ")
				}
				for child := c.FirstChild; child != nil; child = child.NextSibling {
					collect(child)
				}
			}
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				collect(child)
			}
			if text := strings.TrimSpace(pContent.String()); text != "" {
				messages = append(messages, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}
	parse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	}
}
