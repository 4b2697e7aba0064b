package middleware

import (
	"shareit/config"
	"shareit/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. The rate limiter is only created when enabled.
func New(l log.Logger, rl config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if rl.Enabled && rl.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(rl.RequestsPerMin, rl.MaxTrackedUsers)
	}
	return mw
}
