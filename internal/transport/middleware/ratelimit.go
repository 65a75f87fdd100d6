package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/vadea/vadea-backend/internal/ratelimit"
	"github.com/vadea/vadea-backend/pkg/ctxutil"
)

type requestLimiter interface {
	Check(identifier string) ratelimit.Result
	Config() ratelimit.Config
}

// RateLimit rejects requests over the limiter's window budget with 429.
// Authenticated requests are counted per user, anonymous ones per client IP,
// so Auth must run first. clock must be the limiter's clock.
func RateLimit(limiter requestLimiter, clock clockwork.Clock) Middleware {
	limit := strconv.Itoa(limiter.Config().MaxRequests)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := limiter.Check(clientKey(r))

			h := w.Header()
			h.Set("X-RateLimit-Limit", limit)
			h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetTime.Unix(), 10))

			if res.Limited {
				h.Set("Retry-After", strconv.Itoa(retryAfterSeconds(res.ResetTime.Sub(clock.Now()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

// retryAfterSeconds rounds the wait up and never reports less than one second.
func retryAfterSeconds(wait time.Duration) int {
	return max(1, int(math.Ceil(wait.Seconds())))
}
