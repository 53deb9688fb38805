package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

const codeRateLimited = "RATE_LIMITED"

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit allows at most allowedPerMin requests per minute per client address for the named route group.
func RateLimit(
	rateLimiter RequestRateLimiter,
	clientIP *ClientIPResolver,
	routerName string,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			client := clientIP.Resolve(r)
			key := fmt.Sprintf("fittracker:rate:%s:%s", routerName, client)
			res, err := rateLimiter.Allow(
				r.Context(),
				key,
				redis_rate.PerMinute(allowedPerMin),
			)
			if err != nil {
				apperr.WriteHTTP(w, apperr.Internal(err, "rate limit %s", routerName))
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			log.Warnf("rate limited [%s] request from %s", routerName, client)

			retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			pkg.WriteJSONResponse(w, apperr.ErrorResponse{
				Error: fmt.Sprintf("too many requests, retry after %d seconds", retryAfter),
				Code:  codeRateLimited,
			}, http.StatusTooManyRequests)
		})
	}
}
