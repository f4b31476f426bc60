// redact/redact.go
package redact

// SensitiveValue redacts sensitive data based on the hideSensitiveData flag.
// Keys are the logical names of logged values, not header names, so both
// request headers and credential fields are covered.
func SensitiveValue(hideSensitiveData bool, key, value string) string {
	if hideSensitiveData {
		// Logical value names whose contents must never reach log output.
		sensitiveKeys := map[string]bool{
			"AccessToken":   true,
			"Authorization": true,
			"Token":         true,
			"Password":      true,
			"ClientSecret":  true,
		}

		if _, found := sensitiveKeys[key]; found {
			return "REDACTED"
		}
	}
	return value
}
