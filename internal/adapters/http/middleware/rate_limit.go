package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/todolists-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolists-api/internal/domain"
)

const headerRetryAfter = "Retry-After"

// errTooManyRequests is reported when the token bucket is empty.
var errTooManyRequests = fmt.Errorf("too many requests: %w", domain.ErrRateLimited)

// RateLimit returns middleware that admits requests through a single token
// bucket refilled at requestsPerSecond with the given burst. Rejected
// requests get an RFC 9457 429 response with a Retry-After header in whole
// seconds. A rate of zero or less disables limiting.
func RateLimit(requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if requestsPerSecond <= 0 {
			return next
		}
		limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), max(burst, 1))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := limiter.Reserve()
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				w.Header().Set(headerRetryAfter, strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				dto.WriteErrorResponse(w, r, errTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
