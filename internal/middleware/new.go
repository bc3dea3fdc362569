package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"chat-orchestrator/config"
	"chat-orchestrator/pkg/log"
)

type Middleware struct {
	l        log.Logger
	config   config.RateLimitConfig
	limiters *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:      l,
		config: cfg,
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
	}
}
