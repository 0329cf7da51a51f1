package server

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/huddle-sh/huddle/internal/config"
	"github.com/huddle-sh/huddle/internal/daemon/aggregator"
	"github.com/huddle-sh/huddle/internal/models"
)

// ============================================================================
// gRPC Service Definitions (inline since proto generation not yet available)
// ============================================================================

// DashboardServiceServer is the server interface for DashboardService.
type DashboardServiceServer interface {
	GetStatus(context.Context, *emptypb.Empty) (*DashboardStatus, error)
	Regenerate(context.Context, *RegenerateRequest) (*GenerationRun, error)
}

// ProjectServiceServer is the server interface for ProjectService.
type ProjectServiceServer interface {
	ListProjects(context.Context, *emptypb.Empty) (*ProjectList, error)
	GetProject(context.Context, *ProjectID) (*Project, error)
	AddProject(context.Context, *AddProjectRequest) (*Project, error)
	RemoveProject(context.Context, *ProjectID) (*emptypb.Empty, error)
}

// DaemonServiceServer is the server interface for DaemonService.
type DaemonServiceServer interface {
	GetStatus(context.Context, *emptypb.Empty) (*DaemonStatus, error)
	Shutdown(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

// ============================================================================
// Message Types
// ============================================================================

// Project represents a tracked repository in the gRPC API.
type Project struct {
	ProjectID   string
	Name        string
	Path        string
	StandupFile string
	Position    int32
	AddedAt     *timestamppb.Timestamp
}

// ProjectID identifies a project by its unique ID.
type ProjectID struct {
	ProjectID string
}

// ProjectList holds a list of projects in dashboard order.
type ProjectList struct {
	Projects []*Project
}

// AddProjectRequest contains the fields for registering a project.
type AddProjectRequest struct {
	Path        string
	Name        string
	StandupFile string
}

// RegenerateRequest asks for an immediate dashboard generation.
type RegenerateRequest struct {
	Trigger string
}

// GenerationRun describes one completed generation run.
type GenerationRun struct {
	RunID     string
	Trigger   string
	StartedAt string
	EndedAt   string
	Projects  int32
	Missing   int32
	Written   bool
	Status    string
}

// DashboardStatus describes the aggregator's current state.
type DashboardStatus struct {
	IntervalMinutes int32
	ProjectCount    int32
	LastRun         *GenerationRun
}

// DaemonStatus describes the daemon process.
type DaemonStatus struct {
	PID       int32
	Port      int32
	StartedAt *timestamppb.Timestamp
}

// ============================================================================
// Service Registration Functions
// ============================================================================

// RegisterDashboardServiceServer registers the DashboardServiceServer with the gRPC server.
func RegisterDashboardServiceServer(s *grpc.Server, srv DashboardServiceServer) {
	// In real implementation, this would use generated code from protoc
	// For now, we'll implement a simple registration
}

// RegisterProjectServiceServer registers the ProjectServiceServer with the gRPC server.
func RegisterProjectServiceServer(s *grpc.Server, srv ProjectServiceServer) {
	// In real implementation, this would use generated code from protoc
}

// RegisterDaemonServiceServer registers the DaemonServiceServer with the gRPC server.
func RegisterDaemonServiceServer(s *grpc.Server, srv DaemonServiceServer) {
	// In real implementation, this would use generated code from protoc
}

// ============================================================================
// Service Implementations
// ============================================================================

type dashboardService struct {
	aggregator *aggregator.Aggregator
}

func (s *dashboardService) GetStatus(ctx context.Context, _ *emptypb.Empty) (*DashboardStatus, error) {
	return &DashboardStatus{
		IntervalMinutes: int32(s.aggregator.Interval() / time.Minute),
		ProjectCount:    int32(s.aggregator.ProjectCount()),
		LastRun:         runToProto(s.aggregator.LastRun()),
	}, nil
}

func (s *dashboardService) Regenerate(ctx context.Context, req *RegenerateRequest) (*GenerationRun, error) {
	trigger := req.Trigger
	if trigger == "" {
		trigger = models.TriggerManual
	}

	run, err := s.aggregator.Run(trigger)
	if err != nil {
		return nil, err
	}
	return runToProto(run), nil
}

type projectService struct{}

func (s *projectService) ListProjects(ctx context.Context, _ *emptypb.Empty) (*ProjectList, error) {
	index, err := config.LoadProjectsIndex()
	if err != nil {
		return nil, err
	}

	list := &ProjectList{Projects: make([]*Project, 0, len(index.Projects))}
	for i := range index.Projects {
		list.Projects = append(list.Projects, projectToProto(&index.Projects[i]))
	}
	return list, nil
}

func (s *projectService) GetProject(ctx context.Context, req *ProjectID) (*Project, error) {
	index, err := config.LoadProjectsIndex()
	if err != nil {
		return nil, err
	}

	entry := index.FindProject(req.ProjectID)
	if entry == nil {
		return nil, fmt.Errorf("project not found: %s", req.ProjectID)
	}
	return projectToProto(entry), nil
}

func (s *projectService) AddProject(ctx context.Context, req *AddProjectRequest) (*Project, error) {
	name := req.Name
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if req.Path == "" {
		return nil, fmt.Errorf("project path is required")
	}
	if _, err := os.Stat(req.Path); err != nil {
		return nil, fmt.Errorf("project path not accessible: %w", err)
	}

	projectID := uuid.New().String()
	if err := config.RegisterProject(projectID, name, req.Path, req.StandupFile); err != nil {
		return nil, err
	}

	index, err := config.LoadProjectsIndex()
	if err != nil {
		return nil, err
	}
	entry := index.FindProjectByPath(req.Path)
	if entry == nil {
		return nil, fmt.Errorf("project not found after registration: %s", req.Path)
	}
	return projectToProto(entry), nil
}

func (s *projectService) RemoveProject(ctx context.Context, req *ProjectID) (*emptypb.Empty, error) {
	if err := config.UnregisterProject(req.ProjectID); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

type daemonService struct {
	server *Server
}

func (s *daemonService) GetStatus(ctx context.Context, _ *emptypb.Empty) (*DaemonStatus, error) {
	info, err := config.LoadDaemonInfo()
	if err != nil || info == nil {
		return &DaemonStatus{
			PID:  int32(os.Getpid()),
			Port: int32(s.server.Port()),
		}, nil
	}

	return &DaemonStatus{
		PID:       int32(info.PID),
		Port:      int32(info.Port),
		StartedAt: timestamppb.New(info.StartedAt),
	}, nil
}

func (s *daemonService) Shutdown(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	s.server.RequestShutdown()
	return &emptypb.Empty{}, nil
}

// ============================================================================
// Conversion helpers
// ============================================================================

func projectToProto(entry *models.ProjectEntry) *Project {
	return &Project{
		ProjectID:   entry.ProjectID,
		Name:        entry.Name,
		Path:        entry.Path,
		StandupFile: entry.StandupFile,
		Position:    int32(entry.Position),
		AddedAt:     timestamppb.New(entry.AddedAt),
	}
}

func runToProto(run *models.RunEntry) *GenerationRun {
	if run == nil {
		return nil
	}
	return &GenerationRun{
		RunID:     run.RunID,
		Trigger:   run.Trigger,
		StartedAt: run.StartedAt,
		EndedAt:   run.EndedAt,
		Projects:  int32(run.Projects),
		Missing:   int32(run.Missing),
		Written:   run.Written,
		Status:    run.Status,
	}
}
