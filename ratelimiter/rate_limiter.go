package ratelimiter

import (
	"context"
	"sync"

	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/time/rate"
)

const defaultBucketCapacity = 1

type Limiter interface {
	Wait(ctx context.Context, key string) error
}

// RateLimiter keeps one token bucket per key. Keys are AWS API operation names,
// so each operation is paced against its own quota.
type RateLimiter struct {
	bucketCapacity int
	limit          rate.Limit
	logger         lager.Logger
	storage        map[string]*rate.Limiter
	sync.Mutex
}

func DefaultRateLimiter(callsPerSecond float64, logger lager.Logger) *RateLimiter {
	return NewRateLimiter(defaultBucketCapacity, callsPerSecond, logger)
}

func NewRateLimiter(bucketCapacity int, callsPerSecond float64, logger lager.Logger) *RateLimiter {
	limit := rate.Limit(callsPerSecond)
	if callsPerSecond <= 0 {
		limit = rate.Inf
	}
	return &RateLimiter{
		bucketCapacity: bucketCapacity,
		limit:          limit,
		logger:         logger.Session("ratelimiter"),
		storage:        make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a call for key is allowed or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context, key string) error {
	limiter := r.get(key)
	if limiter.Tokens() < 1 {
		r.logger.Debug("waiting-for-token", lager.Data{"key": key})
	}
	return limiter.Wait(ctx)
}

func (r *RateLimiter) get(key string) *rate.Limiter {
	r.Lock()
	defer r.Unlock()
	limiter, ok := r.storage[key]
	if !ok {
		limiter = rate.NewLimiter(r.limit, r.bucketCapacity)
		r.storage[key] = limiter
	}
	return limiter
}
