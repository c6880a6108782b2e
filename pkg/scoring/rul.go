package scoring

import (
	"math"
	"sync"
)

// Estimator maps a failure probability to an estimated number of
// remaining cycles. Results are never negative.
type Estimator interface {
	EstimateRUL(probability float64) float64
}

// LinearEstimator assumes at least Horizon cycles remain up to Midpoint and
// interpolates linearly down to zero at probability 1.
type LinearEstimator struct {
	Midpoint float64
	Horizon  float64
}

func (e LinearEstimator) EstimateRUL(probability float64) float64 {
	if probability <= e.Midpoint {
		return e.Horizon
	}
	return math.Max(0, e.Horizon*(1-probability)/(1-e.Midpoint))
}

// EstimatorRegistry picks an estimator by model version.
type EstimatorRegistry struct {
	mu        sync.RWMutex
	fallback  Estimator
	byVersion map[string]Estimator
}

func NewEstimatorRegistry(fallback Estimator) *EstimatorRegistry {
	return &EstimatorRegistry{
		fallback:  fallback,
		byVersion: make(map[string]Estimator),
	}
}

func (r *EstimatorRegistry) Register(version string, e Estimator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byVersion[version] = e
}

func (r *EstimatorRegistry) For(version string) Estimator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.byVersion[version]; ok {
		return e
	}
	return r.fallback
}
