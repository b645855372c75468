package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	agents Repository
}

func NewService(repo Repository) *Service {
	return &Service{agents: repo}
}

var validStatuses = map[string]bool{
	StatusIdle: true, StatusRunning: true, StatusPaused: true,
	StatusCompleted: true, StatusError: true,
}

func (s *Service) Create(ctx context.Context, a *Agent) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if a.Status == "" {
		a.Status = StatusIdle
	}
	if !validStatuses[a.Status] {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	return s.agents.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Agent, error) {
	return s.agents.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, a *Agent) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !validStatuses[a.Status] {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	current, err := s.agents.GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if !CanTransition(current.Status, a.Status) {
		return fmt.Errorf("cannot transition agent from %s to %s", current.Status, a.Status)
	}
	return s.agents.Update(ctx, a)
}

// SetStatus drives the agent lifecycle: start, pause, resume, complete, fail.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status string) (*Agent, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	a, err := s.agents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(a.Status, status) {
		return nil, fmt.Errorf("cannot transition agent from %s to %s", a.Status, status)
	}
	a.Status = status
	if err := s.agents.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.agents.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Agent, int, error) {
	return s.agents.List(ctx, limit, offset)
}

func (s *Service) Search(ctx context.Context, query string, limit, offset int) ([]*Agent, int, error) {
	if strings.TrimSpace(query) == "" {
		return s.agents.List(ctx, limit, offset)
	}
	return s.agents.Search(ctx, query, limit, offset)
}
