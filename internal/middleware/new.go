package middleware

import (
	"serverless-api-template/pkg/log"
)

// DefaultBodyLimit caps JSON and form request bodies.
const DefaultBodyLimit int64 = 100 * 1024

// CORSConfig lists the origins and methods allowed in production.
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
}

// Config configures the request pipeline.
type Config struct {
	Environment     string
	CORS            CORSConfig
	BodyLimit       int64
	RateLimitPerMin int
}

type Middleware struct {
	l           log.Logger
	environment string
	cors        CORSConfig
	bodyLimit   int64
	limiter     *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:           l,
		environment: cfg.Environment,
		cors:        cfg.CORS,
		bodyLimit:   cfg.BodyLimit,
	}
	if mw.bodyLimit <= 0 {
		mw.bodyLimit = DefaultBodyLimit
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
