package fleet

import (
	"sync"
	"testing"
	"time"
)

func TestRateLimiterStore_Basic(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	limiter := store.GetLimiter(1)
	if limiter == nil {
		t.Fatal("expected limiter, got nil")
	}
	if limiter.Limit() != 1 {
		t.Errorf("expected limit 1, got %v", limiter.Limit())
	}
}

func TestRateLimiterStore_CustomLimit(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	store.SetLimiter(2, 5, 10)
	limiter := store.GetLimiter(2)

	if limiter.Limit() != 5 {
		t.Errorf("expected limit 5, got %v", limiter.Limit())
	}
	if limiter.Burst() != 10 {
		t.Errorf("expected burst 10, got %v", limiter.Burst())
	}
}

func TestRateLimiterStore_Concurrency(t *testing.T) {
	store := NewRateLimiterStore(10, 5)

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.GetLimiter(uint(i%3+1)) == nil {
				t.Error("expected limiter, got nil")
			}
		}()
	}
	wg.Wait()

	if store.GetLimiter(1) != store.GetLimiter(1) {
		t.Error("expected the same limiter for the same engine")
	}
}

func TestRateLimiter_Enforcement(t *testing.T) {
	store := NewRateLimiterStore(2, 2) // 2 events/sec

	if !store.Allow(7) || !store.Allow(7) {
		t.Fatal("expected first two calls to be allowed")
	}
	if store.Allow(7) {
		t.Error("expected third call to be rate limited")
	}
	if !store.Allow(8) {
		t.Error("expected other engines to have their own budget")
	}

	// Wait for refill
	time.Sleep(600 * time.Millisecond)
	if !store.Allow(7) {
		t.Error("expected one token to be available after refill")
	}
}

func TestParseEngineID(t *testing.T) {
	for raw, want := range map[string]uint{"1": 1, "42": 42} {
		got, ok := ParseEngineID(raw)
		if !ok || got != want {
			t.Errorf("ParseEngineID(%q) = %d, %v", raw, got, ok)
		}
	}
	for _, raw := range []string{"", "0", "-1", "abc", "1.5"} {
		if _, ok := ParseEngineID(raw); ok {
			t.Errorf("ParseEngineID(%q) should fail", raw)
		}
	}
}
