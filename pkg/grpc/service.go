package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"liyu1981.xyz/engine-maintenance-service/pkg/scoring"
)

const ServiceName = "engine.telemetry.v1.TelemetryService"

const (
	methodIngestCycle     = "/" + ServiceName + "/IngestCycle"
	methodGetEngineAlerts = "/" + ServiceName + "/GetEngineAlerts"
	methodPostLimiter     = "/" + ServiceName + "/PostLimiter"
)

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CycleMessage struct {
	Cycle     int        `json:"cycle"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Setting1  float64    `json:"setting1"`
	Setting2  float64    `json:"setting2"`
	Setting3  float64    `json:"setting3"`
	// Sensors holds s1..s21 in channel order.
	Sensors []float64 `json:"sensors"`
}

type IngestCycleRequest struct {
	EngineId int           `json:"engine_id"`
	Cycle    *CycleMessage `json:"cycle"`
}

func (r *IngestCycleRequest) GetEngineId() int { return r.EngineId }

type IngestCycleResponse struct {
	Status  *StatusResponse  `json:"status"`
	Outcome *scoring.Outcome `json:"outcome,omitempty"`
}

type EngineRequest struct {
	EngineId int `json:"engine_id"`
}

func (r *EngineRequest) GetEngineId() int { return r.EngineId }

type Alert struct {
	Id        uint64    `json:"id"`
	EngineId  uint64    `json:"engine_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
	Resolved  bool      `json:"resolved"`
}

type GetEngineAlertsResponse struct {
	Status *StatusResponse `json:"status"`
	Alerts []*Alert        `json:"alerts"`
}

type PostLimiterRequest struct {
	EngineId    int     `json:"engine_id"`
	EngineRate  float64 `json:"engine_rate"`
	EngineBurst int32   `json:"engine_burst"`
}

func (r *PostLimiterRequest) GetEngineId() int { return r.EngineId }

type PostLimiterResponse struct {
	Status *StatusResponse `json:"status"`
}

type TelemetryServiceServer interface {
	IngestCycle(context.Context, *IngestCycleRequest) (*IngestCycleResponse, error)
	GetEngineAlerts(context.Context, *EngineRequest) (*GetEngineAlertsResponse, error)
	PostLimiter(context.Context, *PostLimiterRequest) (*PostLimiterResponse, error)
}

func RegisterTelemetryServiceServer(s grpc.ServiceRegistrar, srv TelemetryServiceServer) {
	s.RegisterService(&TelemetryServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](
	method string,
	call func(TelemetryServiceServer, context.Context, *Req) (*Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TelemetryServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TelemetryServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var TelemetryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TelemetryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestCycle",
			Handler:    unaryHandler(methodIngestCycle, TelemetryServiceServer.IngestCycle),
		},
		{
			MethodName: "GetEngineAlerts",
			Handler:    unaryHandler(methodGetEngineAlerts, TelemetryServiceServer.GetEngineAlerts),
		},
		{
			MethodName: "PostLimiter",
			Handler:    unaryHandler(methodPostLimiter, TelemetryServiceServer.PostLimiter),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "engine/telemetry/v1/telemetry.proto",
}

type TelemetryServiceClient interface {
	IngestCycle(ctx context.Context, in *IngestCycleRequest, opts ...grpc.CallOption) (*IngestCycleResponse, error)
	GetEngineAlerts(ctx context.Context, in *EngineRequest, opts ...grpc.CallOption) (*GetEngineAlertsResponse, error)
	PostLimiter(ctx context.Context, in *PostLimiterRequest, opts ...grpc.CallOption) (*PostLimiterResponse, error)
}

type telemetryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTelemetryServiceClient returns a client that always speaks the json
// codec.
func NewTelemetryServiceClient(cc grpc.ClientConnInterface) TelemetryServiceClient {
	return &telemetryServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *telemetryServiceClient) IngestCycle(ctx context.Context, in *IngestCycleRequest, opts ...grpc.CallOption) (*IngestCycleResponse, error) {
	return invoke[IngestCycleResponse](ctx, c.cc, methodIngestCycle, in, opts)
}

func (c *telemetryServiceClient) GetEngineAlerts(ctx context.Context, in *EngineRequest, opts ...grpc.CallOption) (*GetEngineAlertsResponse, error) {
	return invoke[GetEngineAlertsResponse](ctx, c.cc, methodGetEngineAlerts, in, opts)
}

func (c *telemetryServiceClient) PostLimiter(ctx context.Context, in *PostLimiterRequest, opts ...grpc.CallOption) (*PostLimiterResponse, error) {
	return invoke[PostLimiterResponse](ctx, c.cc, methodPostLimiter, in, opts)
}
