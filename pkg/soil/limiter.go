package soil

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages limiters keyed by caller identity (typically
// "client_ip|tier"). It is a transport policy injected around the services: a
// nil store disables limiting entirely.
type RateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

func NewRateLimiterStore() *RateLimiterStore {
	return &RateLimiterStore{
		limiters: make(map[string]*rate.Limiter),
	}
}

// GetLimiter returns the limiter for key, creating it with the given rate and
// burst on first use.
func (s *RateLimiterStore) GetLimiter(key string, r rate.Limit, burst int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(r, burst)
		s.limiters[key] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(key string, r rate.Limit, burst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[key] = rate.NewLimiter(r, burst)
}

// Allow consumes one token for key, creating the limiter on first sight.
func (s *RateLimiterStore) Allow(key string, r rate.Limit, burst int) bool {
	return s.GetLimiter(key, r, burst).Allow()
}
