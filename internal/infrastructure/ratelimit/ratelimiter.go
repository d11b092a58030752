// Package ratelimit throttles abuse-prone endpoints, primarily login and
// registration.
package ratelimit

import "time"

type Config struct {
	PerMinute int
	PerHour   int
}

type RateLimiter interface {
	Allow(key string, cfg Config) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}
