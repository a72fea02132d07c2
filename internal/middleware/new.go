package middleware

import (
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"compliance-assistant/config"
	"compliance-assistant/pkg/log"
)

type Middleware struct {
	l        log.Logger
	cfg      *config.Config
	limiters *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:        l,
		cfg:      cfg,
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterTTL),
	}
}
