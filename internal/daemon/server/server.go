// Package server implements the gRPC control server for the daemon.
package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/huddle-sh/huddle/internal/daemon/aggregator"
)

// Server is the daemon's gRPC server.
type Server struct {
	grpcServer *grpc.Server
	listener   net.Listener
	port       int
	aggregator *aggregator.Aggregator
	onShutdown func()
}

// New creates a new server listening on the specified port.
// Pass port 0 for dynamic allocation.
func New(port int, agg *aggregator.Aggregator, onShutdown func()) (*Server, error) {
	listener, err := (&net.ListenConfig{}).Listen(context.TODO(), "tcp", fmt.Sprintf("localhost:%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	// Get actual port if dynamically allocated
	actualPort := listener.Addr().(*net.TCPAddr).Port

	grpcServer := grpc.NewServer()

	srv := &Server{
		grpcServer: grpcServer,
		listener:   listener,
		port:       actualPort,
		aggregator: agg,
		onShutdown: onShutdown,
	}

	// Register services
	RegisterDashboardServiceServer(grpcServer, &dashboardService{aggregator: agg})
	RegisterProjectServiceServer(grpcServer, &projectService{})
	RegisterDaemonServiceServer(grpcServer, &daemonService{server: srv})

	return srv, nil
}

// Port returns the port the server is listening on.
func (s *Server) Port() int {
	return s.port
}

// Aggregator returns the aggregator driving generation runs.
func (s *Server) Aggregator() *aggregator.Aggregator {
	return s.aggregator
}

// Serve starts serving requests. This blocks until Stop is called.
func (s *Server) Serve() error {
	return s.grpcServer.Serve(s.listener)
}

// Stop gracefully stops the server.
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}

// RequestShutdown triggers a daemon shutdown via the registered callback.
func (s *Server) RequestShutdown() {
	if s.onShutdown != nil {
		go s.onShutdown()
	}
}
