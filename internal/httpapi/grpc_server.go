package httpapi

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"connectpro.org/internal/obs"
)

const healthRefreshInterval = 10 * time.Second

// GRPCServer exposes the standard gRPC health service, kept in sync with
// the same readiness probe the HTTP /readyz endpoint uses.
type GRPCServer struct {
	srv    *grpc.Server
	health *health.Server
	probe  ReadyProbe
}

// NewGRPCServer creates the gRPC health wrapper.
func NewGRPCServer(probe ReadyProbe) *GRPCServer {
	h := health.NewServer()
	s := grpc.NewServer()
	healthpb.RegisterHealthServer(s, h)
	return &GRPCServer{srv: s, health: h, probe: probe}
}

// Serve blocks serving gRPC on lis, refreshing the health status
// periodically until the server is stopped.
func (g *GRPCServer) Serve(lis net.Listener) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g.refresh(ctx)
	go func() {
		ticker := time.NewTicker(healthRefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				g.refresh(ctx)
			}
		}
	}()

	return g.srv.Serve(lis)
}

// GracefulStop drains in-flight RPCs and stops the server.
func (g *GRPCServer) GracefulStop() {
	g.srv.GracefulStop()
}

func (g *GRPCServer) refresh(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := g.probe.Check(checkCtx); err != nil {
		obs.SetReady(false)
		g.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	obs.SetReady(true)
	g.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}
