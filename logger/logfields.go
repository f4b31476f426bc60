// logfields.go
package logger

import (
	"go.uber.org/zap"
)

// LogError logs an error that occurred during an API call, including the server's
// status message and raw response body for diagnosis.
func (d *defaultLogger) LogError(event string, method string, url string, statusCode int, serverStatusMessage string, err error, rawResponse string) {
	fields := []zap.Field{
		zap.String("event", event),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.String("status_message", serverStatusMessage),
		zap.Error(err),
	}
	if rawResponse != "" {
		fields = append(fields, zap.String("raw_response", rawResponse))
	}
	if d.logLevel <= LogLevelError {
		d.logger.Error("API error", fields...)
	}
}

// LogAuthTokenError logs a failure to obtain or refresh an auth token.
func (d *defaultLogger) LogAuthTokenError(event string, method string, url string, statusCode int, err error) {
	if d.logLevel <= LogLevelError {
		d.logger.Error("Auth token error",
			zap.String("event", event),
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status_code", statusCode),
			zap.Error(err),
		)
	}
}
