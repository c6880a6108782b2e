package grpc

import (
	"context"
	"fmt"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
)

func validateEngineID(engineID *int) z.ZogIssueList {
	var engineIdValidator = z.Int().GT(0).Required()
	return engineIdValidator.Validate(engineID)
}

func failed(format string, args ...any) *StatusResponse {
	return &StatusResponse{Success: false, Message: fmt.Sprintf(format, args...)}
}

func ok() *StatusResponse {
	return &StatusResponse{Success: true, Message: "OK"}
}

var cycleValidator = z.Struct(z.Shape{
	"Cycle":    z.Int().GT(0).Required(),
	"Setting1": z.Float64(),
	"Setting2": z.Float64(),
	"Setting3": z.Float64(),
	"Sensors":  z.Slice(z.Float64()).Len(models.SensorCount).Required(),
})

func (m *CycleMessage) record() *models.CycleRecord {
	var values [models.SensorCount]float64
	copy(values[:], m.Sensors)

	record := &models.CycleRecord{
		Cycle: m.Cycle,
		Settings: models.Settings{
			Setting1: m.Setting1,
			Setting2: m.Setting2,
			Setting3: m.Setting3,
		},
		Sensors: models.SensorsFromValues(values),
	}
	if m.Timestamp != nil {
		record.Timestamp = *m.Timestamp
	}
	return record
}

func (s *TelemetryServer) IngestCycle(ctx context.Context, req *IngestCycleRequest) (*IngestCycleResponse, error) {
	if err := validateEngineID(&req.EngineId); err != nil {
		return &IngestCycleResponse{Status: failed("validation error: %v", err)}, nil
	}

	if req.Cycle == nil {
		return &IngestCycleResponse{Status: failed("validation error: cycle can not be empty")}, nil
	}
	if err := cycleValidator.Validate(req.Cycle); err != nil {
		return &IngestCycleResponse{Status: failed("validation error: %v", err)}, nil
	}

	outcome, err := s.Fleet.Cycle.IngestCycle(ctx, uint(req.EngineId), req.Cycle.record())
	if err != nil {
		logger := common.GetLoggerWith(
			common.LoggerNameGrpcServer,
			zap.String(common.LoggerFieldCategory, common.LoggerCategoryCycle),
		)
		logger.Warn("Cycle rejected", zap.Int("engine_id", req.EngineId), zap.Error(err))

		return &IngestCycleResponse{Status: failed("%s", err.Error())}, nil
	}

	return &IngestCycleResponse{
		Status:  &StatusResponse{Success: true, Message: outcome.Message()},
		Outcome: outcome,
	}, nil
}

func (s *TelemetryServer) GetEngineAlerts(ctx context.Context, req *EngineRequest) (*GetEngineAlertsResponse, error) {
	if err := validateEngineID(&req.EngineId); err != nil {
		return &GetEngineAlertsResponse{Status: failed("validation error: %v", err)}, nil
	}

	alerts, err := s.Fleet.Alert.GetEngineAlerts(uint(req.EngineId))
	if err != nil {
		return &GetEngineAlertsResponse{
			Status: &StatusResponse{
				Success: false,
				Message: err.Error(),
			},
			Alerts: nil,
		}, nil
	}

	return &GetEngineAlertsResponse{
		Status: ok(),
		Alerts: common.Mapper(alerts, func(a models.Alert) *Alert {
			return &Alert{
				Id:        uint64(a.ID),
				EngineId:  uint64(a.EngineID),
				Type:      string(a.Type),
				Message:   a.Message,
				CreatedAt: a.CreatedAt,
				IsRead:    a.IsRead,
				Resolved:  a.Resolved,
			}
		}),
	}, nil
}

func (s *TelemetryServer) PostLimiter(ctx context.Context, req *PostLimiterRequest) (*PostLimiterResponse, error) {
	if err := validateEngineID(&req.EngineId); err != nil {
		return &PostLimiterResponse{Status: failed("validation error: %v", err)}, nil
	}

	var rateValidator = z.Float64().GT(0).Required()
	if err := rateValidator.Validate(&req.EngineRate); err != nil {
		return &PostLimiterResponse{Status: failed("validation error: %v", err)}, nil
	}

	var burstValidator = z.Int32().GT(0).Required()
	if err := burstValidator.Validate(&req.EngineBurst); err != nil {
		return &PostLimiterResponse{Status: failed("validation error: %v", err)}, nil
	}

	if s.RateLimiterStore == nil {
		return &PostLimiterResponse{
			Status: &StatusResponse{
				Success: false,
				Message: "RateLimiterStore is not used. No effect.",
			},
		}, nil
	}

	s.RateLimiterStore.SetLimiter(uint(req.EngineId), rate.Limit(req.EngineRate), int(req.EngineBurst))
	return &PostLimiterResponse{Status: ok()}, nil
}
