package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"liyu1981.xyz/engine-maintenance-service/pkg/auth"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/fleet"
	emsGrpc "liyu1981.xyz/engine-maintenance-service/pkg/grpc"
	emsHttp "liyu1981.xyz/engine-maintenance-service/pkg/http"
	"liyu1981.xyz/engine-maintenance-service/pkg/inference"
)

const shutdownTimeout = 10 * time.Second

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and gRPC servers",
		Long: `Start the HTTP API and, when EMS_GRPC_HOST_PORT is set, the gRPC
telemetry service. Both stop gracefully on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

// newIssuer returns a nil issuer when no secret is configured; the HTTP
// auth middleware then answers 401 for every protected route.
func newIssuer(cfg *common.Config) (*auth.Issuer, error) {
	issuer, err := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if errors.Is(err, auth.ErrNoSecret) {
		logger := common.GetLoggerWith(common.LoggerNameCli)
		logger.Warn("EMS_JWT_SECRET is not set, authenticated endpoints will reject every request")
		return nil, nil
	}
	return issuer, err
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := common.GetLoggerWith(common.LoggerNameCli)

	f, engine, err := buildFleet(cfg)
	if err != nil {
		return err
	}

	if cfg.ModelWatch {
		go func() {
			if err := inference.Watch(ctx, cfg.ModelPath, engine, nil); err != nil {
				logger.Warn("Model watcher stopped", zap.Error(err))
			}
		}()
	}

	issuer, err := newIssuer(cfg)
	if err != nil {
		return err
	}

	defaultLimiter := zap.String("default_limiter",
		fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst))

	errCh := make(chan error, 2)

	var grpcServer *grpc.Server
	if cfg.GrpcHostPort != "" {
		telemetryServer := emsGrpc.TelemetryServer{
			Fleet:            f,
			RateLimiterStore: fleet.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
		}
		interceptor := telemetryServer.CreateRateLimitInterceptor(emsGrpc.DefaultLimitedRequests())
		grpcServer = grpc.NewServer(grpc.UnaryInterceptor(interceptor))
		emsGrpc.RegisterTelemetryServiceServer(grpcServer, &telemetryServer)
		logger.Info("gRPC server created with:", defaultLimiter)

		listener, err := net.Listen("tcp", cfg.GrpcHostPort)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", cfg.GrpcHostPort, err)
		}

		go func() {
			logger.Info("Starting gRPC server on: " + cfg.GrpcHostPort)
			if err := grpcServer.Serve(listener); err != nil {
				errCh <- fmt.Errorf("grpc server failed to serve: %w", err)
			}
		}()
	}

	rs := &emsHttp.RestfulServer{
		Server:           gin.Default(),
		Fleet:            f,
		Issuer:           issuer,
		RateLimiterStore: fleet.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
	}
	rs.Setup()
	logger.Info("http server created with:", defaultLimiter)

	httpServer := &http.Server{Addr: cfg.HttpHostPort, Handler: rs.Server}
	go func() {
		logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Warn("http server shutdown failed", zap.Error(shutdownErr))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	return err
}
