package grpc

import (
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/db"
	"liyu1981.xyz/engine-maintenance-service/pkg/fleet"
	"liyu1981.xyz/engine-maintenance-service/pkg/inference"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
	"liyu1981.xyz/engine-maintenance-service/pkg/scoring"
	_ "liyu1981.xyz/engine-maintenance-service/pkg/testing"

	"liyu1981.xyz/engine-maintenance-service/pkg/fleet/mocks"
)

const bufSize = 1024 * 1024

var testModelInfo = inference.ModelInfo{
	Name:       "test",
	Version:    "test-1",
	WindowSize: 50,
	Features:   []string{"s2"},
	Horizon:    30,
}

func newTestFleet(t *testing.T, predictor fleet.Predictor) *fleet.Fleet {
	database, err := db.Open(db.UseIsolatedMemorySqliteDialector())
	require.NoError(t, err)
	return fleet.New(*database, fleet.OptionsFromConfig(common.DefaultConfig(), predictor))
}

func startTestServer(t *testing.T, f *fleet.Fleet, limiterStore *fleet.RateLimiterStore) TelemetryServiceClient {
	listener := bufconn.Listen(bufSize)

	telemetryServer := TelemetryServer{Fleet: f, RateLimiterStore: limiterStore}
	interceptor := grpc.UnaryInterceptor(telemetryServer.CreateRateLimitInterceptor(DefaultLimitedRequests()))
	server := grpc.NewServer(interceptor)
	RegisterTelemetryServiceServer(server, &telemetryServer)

	go func() {
		_ = server.Serve(listener)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})

	return NewTelemetryServiceClient(conn)
}

func seedEngine(t *testing.T, f *fleet.Fleet) *models.Engine {
	engine, err := f.Engine.CreateEngine(&models.Engine{SerialNumber: "ESN-" + uuid.NewString()[:8]})
	require.NoError(t, err)
	return engine
}

func cycleMessage(cycle int) *CycleMessage {
	sensors := make([]float64, models.SensorCount)
	for i := range sensors {
		sensors[i] = float64(i) + 1.5
	}
	sensors[1] = 600 + float64(cycle)
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(cycle) * time.Hour)

	return &CycleMessage{
		Cycle:     cycle,
		Timestamp: &ts,
		Setting1:  -0.0007,
		Setting2:  -0.0004,
		Setting3:  100,
		Sensors:   sensors,
	}
}

func TestIngestCycleAndGetAlerts(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	predictor := mocks.NewMockPredictor(ctrl)
	predictor.EXPECT().Info().Return(testModelInfo, true).AnyTimes()

	f := newTestFleet(t, predictor)
	client := startTestServer(t, f, nil)
	engine := seedEngine(t, f)
	ctx := context.Background()

	for c := 1; c < 50; c++ {
		r, err := client.IngestCycle(ctx, &IngestCycleRequest{EngineId: int(engine.ID), Cycle: cycleMessage(c)})
		require.NoError(t, err)
		require.True(t, r.Status.Success, r.Status.Message)
		assert.Equal(t, scoring.StateInsufficientHistory, r.Outcome.State)
	}

	predictor.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(0.9, testModelInfo, nil).Times(1)

	r, err := client.IngestCycle(ctx, &IngestCycleRequest{EngineId: int(engine.ID), Cycle: cycleMessage(50)})
	require.NoError(t, err)
	require.True(t, r.Status.Success, r.Status.Message)
	assert.Equal(t, "Cycle data added and predictions updated", r.Status.Message)
	assert.Equal(t, scoring.StatePersisted, r.Outcome.State)
	require.NotNil(t, r.Outcome.Cycle)
	assert.Equal(t, 650.0, r.Outcome.Cycle.Sensors.S2)
	require.NotNil(t, r.Outcome.Alert)

	resp, err := client.GetEngineAlerts(ctx, &EngineRequest{EngineId: int(engine.ID)})
	require.NoError(t, err)
	require.True(t, resp.Status.Success)
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, string(models.AlertTypeMaintenanceDue), resp.Alerts[0].Type)
	assert.False(t, resp.Alerts[0].Resolved)
}

func TestIngestCycle_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	f := newTestFleet(t, nil)
	client := startTestServer(t, f, nil)
	engine := seedEngine(t, f)
	ctx := context.Background()

	cases := []struct {
		name string
		req  *IngestCycleRequest
		want string
	}{
		{"empty engine id", &IngestCycleRequest{Cycle: cycleMessage(1)}, "validation error"},
		{"empty cycle", &IngestCycleRequest{EngineId: int(engine.ID)}, "validation error"},
		{"zero cycle", &IngestCycleRequest{EngineId: int(engine.ID), Cycle: cycleMessage(0)}, "validation error"},
		{"missing sensors", &IngestCycleRequest{EngineId: int(engine.ID), Cycle: &CycleMessage{Cycle: 1, Sensors: []float64{1, 2}}}, "validation error"},
		{"unknown engine", &IngestCycleRequest{EngineId: int(engine.ID) + 100, Cycle: cycleMessage(1)}, "engine not found"},
	}
	for _, tc := range cases {
		r, err := client.IngestCycle(ctx, tc.req)
		assert.NoError(t, err, tc.name)
		assert.False(t, r.Status.Success, tc.name)
		assert.True(t, strings.Contains(r.Status.Message, tc.want), "%s: %s", tc.name, r.Status.Message)
	}

	r, err := client.IngestCycle(ctx, &IngestCycleRequest{EngineId: int(engine.ID), Cycle: cycleMessage(1)})
	require.NoError(t, err)
	require.True(t, r.Status.Success)

	r, err = client.IngestCycle(ctx, &IngestCycleRequest{EngineId: int(engine.ID), Cycle: cycleMessage(1)})
	require.NoError(t, err)
	assert.False(t, r.Status.Success)
	assert.Contains(t, r.Status.Message, "Try using cycle 2.")
}

func TestRateLimitInterceptor_IngestCycle(t *testing.T) {
	common.SetTestLoggerNop()

	limiterStore := fleet.NewRateLimiterStore(0.001, 2) // 2 requests, then effectively no refill
	f := newTestFleet(t, nil)
	client := startTestServer(t, f, limiterStore)
	engine := seedEngine(t, f)
	ctx := context.Background()

	// First 2 requests should pass
	for c := 1; c <= 2; c++ {
		r, err := client.IngestCycle(ctx, &IngestCycleRequest{EngineId: int(engine.ID), Cycle: cycleMessage(c)})
		require.NoError(t, err, "expected request %d to pass", c)
		require.True(t, r.Status.Success)
	}

	// 3rd request should fail immediately
	_, err := client.IngestCycle(ctx, &IngestCycleRequest{EngineId: int(engine.ID), Cycle: cycleMessage(3)})
	require.Error(t, err, "expected third request to be rate limited")

	st, ok := status.FromError(err)
	require.True(t, ok, "expected gRPC status error")
	require.Equal(t, codes.ResourceExhausted, st.Code(), "expected ResourceExhausted code")

	// other engines keep their own budget
	other := seedEngine(t, f)
	_, err = client.IngestCycle(ctx, &IngestCycleRequest{EngineId: int(other.ID), Cycle: cycleMessage(1)})
	require.NoError(t, err)

	// increase rate limiter
	lr, err := client.PostLimiter(ctx, &PostLimiterRequest{
		EngineId:    int(engine.ID),
		EngineRate:  3,
		EngineBurst: 2,
	})
	require.NoError(t, err)
	require.True(t, lr.Status.Success)

	// Should pass again
	_, err = client.IngestCycle(ctx, &IngestCycleRequest{EngineId: int(engine.ID), Cycle: cycleMessage(3)})
	require.NoError(t, err, "expected request after limiter update to pass")
}

func TestPostLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	f := newTestFleet(t, nil)
	ctx := context.Background()

	{
		client := startTestServer(t, f, fleet.NewRateLimiterStore(1, 1))

		for _, req := range []*PostLimiterRequest{
			{EngineId: 0, EngineRate: 1, EngineBurst: 1},
			{EngineId: 1, EngineRate: 0, EngineBurst: 1},
			{EngineId: 1, EngineRate: 1, EngineBurst: 0},
		} {
			r, err := client.PostLimiter(ctx, req)
			assert.NoError(t, err)
			assert.False(t, r.Status.Success)
			assert.Contains(t, r.Status.Message, "validation error")
		}
	}

	{
		client := startTestServer(t, f, nil)
		r, err := client.PostLimiter(ctx, &PostLimiterRequest{EngineId: 1, EngineRate: 1, EngineBurst: 1})
		assert.NoError(t, err)
		assert.False(t, r.Status.Success)
		assert.Contains(t, r.Status.Message, "No effect")
	}
}

func TestGetEngineAlerts_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	{
		client := startTestServer(t, newTestFleet(t, nil), nil)

		// empty EngineId will fail validation
		r, err := client.GetEngineAlerts(context.Background(), &EngineRequest{EngineId: 0})
		assert.NoError(t, err)
		assert.False(t, r.Status.Success, "expected GetEngineAlerts to fail")
		assert.True(t, strings.Contains(r.Status.Message, "validation error"), "expected GetEngineAlerts to fail with validation error")
	}

	{
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newTestFleet(t, nil)
		mockIAlert := mocks.NewMockIAlert(ctrl)
		f.WithServices(fleet.ServiceOpts{Alert: mockIAlert})
		client := startTestServer(t, f, nil)

		// internal error should fail too
		mockIAlert.EXPECT().
			GetEngineAlerts(gomock.Eq(uint(7))).
			Return(nil, fmt.Errorf("test error")).
			Times(1)
		r, err := client.GetEngineAlerts(context.Background(), &EngineRequest{EngineId: 7})
		assert.NoError(t, err)
		assert.False(t, r.Status.Success, "expected GetEngineAlerts to fail")
		assert.True(t, strings.Contains(r.Status.Message, "test error"), "expected GetEngineAlerts to fail with test error")
	}
}

func TestJSONCodecRegistered(t *testing.T) {
	codec := jsonCodec{}
	b, err := codec.Marshal(&EngineRequest{EngineId: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"engine_id":3}`, string(b))

	var req EngineRequest
	require.NoError(t, codec.Unmarshal(b, &req))
	assert.Equal(t, 3, req.EngineId)
}
