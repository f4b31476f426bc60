// jamfpro/helpers_test.go
package jamfpro

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mdmtools/jamf-locator/authenticationhandler"
	"github.com/mdmtools/jamf-locator/httpclient"
	"github.com/stretchr/testify/require"
)

// newProTestClient serves the mux with an OAuth token endpoint attached and
// returns a client resolved to the Pro API.
func newProTestClient(t *testing.T, mux *http.ServeMux) *httpclient.Client {
	t.Helper()

	mux.HandleFunc("/api/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"test-token","expires_in":1200,"token_type":"Bearer"}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := httpclient.BuildClient(httpclient.ClientConfig{
		BaseURL:  srv.URL,
		Auth:     authenticationhandler.ClientCredentials{ClientID: "id", ClientSecret: "secret"},
		LogLevel: "LogLevelNone",
	})
	require.NoError(t, err)
	return client
}

// newClassicTestClient serves the mux with a legacy token endpoint attached
// and returns a client resolved to the Classic API.
func newClassicTestClient(t *testing.T, mux *http.ServeMux) *httpclient.Client {
	t.Helper()

	mux.HandleFunc("/api/v1/auth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"token":"legacy-token"}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := httpclient.BuildClient(httpclient.ClientConfig{
		BaseURL:  srv.URL,
		Auth:     authenticationhandler.ClientCredentials{Username: "admin", Password: "pw"},
		LogLevel: "LogLevelNone",
	})
	require.NoError(t, err)
	return client
}

func strptr(s string) *string { return &s }
