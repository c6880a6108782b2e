package fleet

import (
	"strconv"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-engine rate limiters: engine_id -> rate limiter
type RateLimiterStore struct {
	limiters     map[uint]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[uint]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

// GetLimiter returns the engine's limiter, creating one at the default
// rate on first use.
func (s *RateLimiterStore) GetLimiter(engineID uint) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[engineID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[engineID] = limiter
	}
	return limiter
}

// SetLimiter replaces the engine's limiter; tokens already spent are forgotten.
func (s *RateLimiterStore) SetLimiter(engineID uint, engineRate rate.Limit, engineBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[engineID] = rate.NewLimiter(engineRate, engineBurst)
}

// Allow takes one token from the engine's bucket and reports whether the
// request may go ahead.
func (s *RateLimiterStore) Allow(engineID uint) bool {
	return s.GetLimiter(engineID).Allow()
}

// ParseEngineID reads an engine id from a path segment or request field.
// Engine ids start at 1, so "0" is rejected along with non-numeric input.
func ParseEngineID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
