package grpc

import (
	"context"
	"reflect"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
)

// CreateRateLimitInterceptor limits the listed request types per engine.
// Requests without a valid engine id pass through to handler validation.
func (s *TelemetryServer) CreateRateLimitInterceptor(targetReqTypes []any) grpc.UnaryServerInterceptor {
	targetTypeMap := common.Reducer(targetReqTypes,
		func(m map[reflect.Type]bool, t any) map[reflect.Type]bool {
			m[reflect.TypeOf(t)] = true
			return m
		},
		map[reflect.Type]bool{},
	)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if _, ok := targetTypeMap[reflect.TypeOf(req)]; ok {
			if r, ok := req.(interface{ GetEngineId() int }); ok && r.GetEngineId() > 0 {
				engineID := uint(r.GetEngineId())
				if !s.CheckEngineLimiter(engineID) {
					logger := common.GetLoggerWith(
						common.LoggerNameGrpcServer,
						zap.String(common.LoggerFieldCategory, common.LoggerCategoryRequest),
					)
					logger.Info("Rate limited", zap.String("method", info.FullMethod), zap.Uint("engine_id", engineID))
					return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
				}
			}
		}

		return handler(ctx, req)
	}
}

// DefaultLimitedRequests are the request types limited in production.
func DefaultLimitedRequests() []any {
	return []any{
		&IngestCycleRequest{},
		&EngineRequest{},
	}
}
