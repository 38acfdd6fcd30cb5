// Package grpc serves the standard grpc.health.v1 protocol for the sensitive
// words server. Serving status follows the database readiness checks.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/sensitivewords/internal/logging"
	"github.com/dmitrijs2005/sensitivewords/internal/server/health"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service reported alongside the overall ("") status.
const ServiceName = "sensitivewords.SensitiveWords"

type HealthChecker interface {
	Run(ctx context.Context, tags ...string) health.Report
}

type GRPCServer struct {
	address  string
	logger   logging.Logger
	checker  HealthChecker
	interval time.Duration
	health   *grpchealth.Server
}

func NewGRPCServer(addr string, l logging.Logger, checker HealthChecker, interval time.Duration) *GRPCServer {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &GRPCServer{
		address:  addr,
		logger:   l.With("module", "grpc_server"),
		checker:  checker,
		interval: interval,
		health:   grpchealth.NewServer(),
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.loggingInterceptor),
		grpc.ChainStreamInterceptor(s.streamLoggingInterceptor),
	)
	healthpb.RegisterHealthServer(srv, s.health)

	s.probe(ctx)
	go s.watch(ctx)

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())
	return srv.Serve(lis)
}

func (s *GRPCServer) watch(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.probe(ctx)
		}
	}
}

// probe runs the readiness checks and publishes the result.
func (s *GRPCServer) probe(ctx context.Context) {
	st := healthpb.HealthCheckResponse_SERVING
	rep := s.checker.Run(ctx, "db")
	if !rep.Healthy() {
		st = healthpb.HealthCheckResponse_NOT_SERVING
		s.logger.Warn(ctx, "readiness check failed", "entries", rep.Entries)
	}
	if ctx.Err() != nil {
		return
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
}
