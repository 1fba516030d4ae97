package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// LoginRateLimiter limits credential endpoints to 10 requests per
// minute per client IP.
func LoginRateLimiter() func(http.Handler) http.Handler {
	return httprate.LimitByIP(10, time.Minute)
}
