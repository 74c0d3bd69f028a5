package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/todolists-api/internal/platform/logging"
)

const redactedValue = "[REDACTED]"

// RedactHeaders converts an http.Header map into a "headers" group attribute
// with one entry per header, sorted by name. Headers listed in
// logging.SensitiveHeaders are replaced with "[REDACTED]" and multi-value
// headers are joined with a comma.
func RedactHeaders(headers http.Header) slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]any, 0, len(keys))
	for _, key := range keys {
		value := strings.Join(headers[key], ",")
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			value = redactedValue
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return slog.Group("headers", attrs...)
}
