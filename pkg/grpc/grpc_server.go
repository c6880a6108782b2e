package grpc

import (
	"golang.org/x/time/rate"
	"liyu1981.xyz/engine-maintenance-service/pkg/fleet"
)

type TelemetryServer struct {
	Fleet            *fleet.Fleet
	RateLimiterStore *fleet.RateLimiterStore
}

func (s *TelemetryServer) GetLimiter(engineID uint) *rate.Limiter {
	if s.RateLimiterStore == nil {
		return nil
	} else {
		return s.RateLimiterStore.GetLimiter(engineID)
	}
}

func (s *TelemetryServer) CheckEngineLimiter(engineID uint) bool {
	limiter := s.GetLimiter(engineID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}
