package middleware

import (
	"intelliassist/config"
	"intelliassist/pkg/log"
)

// Middleware bundles the cross-cutting HTTP concerns: CORS and per-client
// rate limiting.
type Middleware struct {
	l       log.Logger
	cfg     config.RateLimitConfig
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newRateLimiter(cfg.RequestsPerMin),
	}
}
