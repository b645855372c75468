package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mediagent/mediagent/internal/platform/runner"
)

type Service struct {
	workflows Repository
	runner    *runner.Client
}

// NewService wires the workflow repository and an optional runner client.
// A nil runner means activation only flips the local status.
func NewService(repo Repository, rc *runner.Client) *Service {
	return &Service{workflows: repo, runner: rc}
}

// Generate synthesizes a document from the prompt and persists it as a
// draft workflow.
func (s *Service) Generate(ctx context.Context, name, prompt string) (*Workflow, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("prompt is required")
	}
	if strings.TrimSpace(name) == "" {
		name = "Generated workflow"
	}
	doc := Synthesize(name, prompt)
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode workflow document: %w", err)
	}
	w := &Workflow{
		Name:     name,
		Prompt:   prompt,
		Document: raw,
		Status:   StatusDraft,
	}
	if err := s.workflows.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Import persists an externally produced document. The document must parse
// into the runner-compatible shape; it is stored as given so export
// reproduces it unchanged.
func (s *Service) Import(ctx context.Context, name string, raw json.RawMessage) (*Workflow, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid workflow document: %w", err)
	}
	if strings.TrimSpace(name) == "" {
		name = doc.Name
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	w := &Workflow{
		Name:     name,
		Document: raw,
		Status:   StatusDraft,
	}
	if err := s.workflows.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Export returns the stored document for a workflow.
func (s *Service) Export(ctx context.Context, id uuid.UUID) (json.RawMessage, error) {
	w, err := s.workflows.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(w.Document) == 0 {
		return nil, fmt.Errorf("workflow has no document")
	}
	return w.Document, nil
}

// Activate pushes the workflow to the runner (when configured) and marks it
// active. A runner failure marks the workflow errored and is surfaced as a
// generic failure; nothing is retried.
func (s *Service) Activate(ctx context.Context, id uuid.UUID) (*Workflow, error) {
	w, err := s.workflows.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.Status == StatusActive {
		return w, nil
	}
	if len(w.Document) == 0 {
		return nil, fmt.Errorf("workflow has no document")
	}

	if s.runner != nil {
		if err := s.pushAndActivate(ctx, w); err != nil {
			log.Error().Err(err).Str("workflow_id", w.ID.String()).Msg("runner activation failed")
			w.Status = StatusError
			if uerr := s.workflows.Update(ctx, w); uerr != nil {
				return nil, uerr
			}
			return nil, fmt.Errorf("workflow activation failed")
		}
	}

	w.Status = StatusActive
	if err := s.workflows.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) pushAndActivate(ctx context.Context, w *Workflow) error {
	if w.RunnerID == "" {
		remoteID, err := s.runner.CreateWorkflow(ctx, w.Document)
		if err != nil {
			return err
		}
		w.RunnerID = remoteID
	}
	return s.runner.Activate(ctx, w.RunnerID)
}

// Deactivate pauses the workflow, disabling it on the runner first when it
// has been pushed there.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*Workflow, error) {
	w, err := s.workflows.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.Status != StatusActive {
		return nil, fmt.Errorf("workflow is not active")
	}

	if s.runner != nil && w.RunnerID != "" {
		if err := s.runner.Deactivate(ctx, w.RunnerID); err != nil {
			log.Error().Err(err).Str("workflow_id", w.ID.String()).Msg("runner deactivation failed")
			w.Status = StatusError
			if uerr := s.workflows.Update(ctx, w); uerr != nil {
				return nil, uerr
			}
			return nil, fmt.Errorf("workflow deactivation failed")
		}
	}

	w.Status = StatusPaused
	if err := s.workflows.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Workflow, error) {
	return s.workflows.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, w *Workflow) error {
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("name is required")
	}
	current, err := s.workflows.GetByID(ctx, w.ID)
	if err != nil {
		return err
	}
	// Status and runner binding are driven by activate/deactivate, not edits.
	w.Status = current.Status
	w.RunnerID = current.RunnerID
	if len(w.Document) > 0 {
		var doc Document
		if err := json.Unmarshal(w.Document, &doc); err != nil {
			return fmt.Errorf("invalid workflow document: %w", err)
		}
	} else {
		w.Document = current.Document
	}
	return s.workflows.Update(ctx, w)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.workflows.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Workflow, int, error) {
	return s.workflows.List(ctx, limit, offset)
}

func (s *Service) Search(ctx context.Context, query string, limit, offset int) ([]*Workflow, int, error) {
	if strings.TrimSpace(query) == "" {
		return s.workflows.List(ctx, limit, offset)
	}
	return s.workflows.Search(ctx, query, limit, offset)
}
