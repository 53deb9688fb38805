package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				if r := recover(); r != nil {
					if r == http.ErrAbortHandler {
						panic(r)
					}
					log.Errorf("http: panic serving %s %s: %v\n%s", req.Method, req.URL.Path, r, debug.Stack())
					if metricsManager != nil {
						metricsManager.CounterHandleRequestPanic.Inc()
					}
					apperr.WriteHTTP(respWriter, apperr.Internal(fmt.Errorf("panic: %v", r), "serve %s", req.URL.Path))
				}
			}()

			next.ServeHTTP(respWriter, req)
		})
	}
}
