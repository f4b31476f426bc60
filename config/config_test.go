// config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/mdmtools/jamf-locator/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JAMF_BASE_URL", "https://acme.jamfcloud.com")
	t.Setenv("JAMF_CLIENT_ID", "client-abc")
	t.Setenv("JAMF_CLIENT_SECRET", "s3cret")
	t.Setenv("JAMF_USERNAME", "")
	t.Setenv("JAMF_PASSWORD", "")
	t.Setenv("JAMF_DEVICE_ID", "42")
}

func TestLoadValidConfig(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("HTTP_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://acme.jamfcloud.com", cfg.BaseURL)
	assert.Equal(t, "42", cfg.DeviceID)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)

	clientConfig := cfg.ClientConfig()
	assert.Equal(t, "client-abc", clientConfig.Auth.ClientID)
	assert.Equal(t, 30*time.Second, clientConfig.CustomTimeout)
}

func TestLoadMissingBaseURL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JAMF_BASE_URL", "")

	_, err := Load()
	var configErr *response.InvalidConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "JAMF_BASE_URL", configErr.Field)
}

func TestLoadMalformedBaseURL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JAMF_BASE_URL", "acme.jamfcloud.com")

	_, err := Load()
	var configErr *response.InvalidConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "JAMF_BASE_URL", configErr.Field)
}

func TestLoadNoCompleteCredentialPair(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JAMF_CLIENT_SECRET", "")

	_, err := Load()
	var configErr *response.InvalidConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "credentials", configErr.Field)
}

func TestLoadLegacyPairAlone(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JAMF_CLIENT_ID", "")
	t.Setenv("JAMF_CLIENT_SECRET", "")
	t.Setenv("JAMF_USERNAME", "jamfadmin")
	t.Setenv("JAMF_PASSWORD", "hunter2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "jamfadmin", cfg.Username)
}

func TestEASettings(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.EASettings(), "no EA name means stamping disabled")

	t.Setenv("JAMF_EA_NAME", "Last Location Update")
	t.Setenv("JAMF_EA_TYPE", "DATE")
	t.Setenv("JAMF_EA_DATE_FORMAT", "2006-01-02")

	cfg, err = Load()
	require.NoError(t, err)

	ea := cfg.EASettings()
	require.NotNil(t, ea)
	assert.Equal(t, "Last Location Update", ea.Name)
	assert.Equal(t, "DATE", ea.Type)
	assert.Equal(t, "2006-01-02", ea.DateFormat)
	assert.False(t, ea.CollectionAllowed)
}
