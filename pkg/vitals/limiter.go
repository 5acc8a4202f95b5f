package vitals

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-session rate limiters: session_id -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(sessionID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[sessionID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[sessionID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(sessionID string, sessionRate rate.Limit, sessionBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[sessionID] = rate.NewLimiter(sessionRate, sessionBurst)
}
