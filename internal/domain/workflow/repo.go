package workflow

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for workflows. Both the postgres
// and the in-memory backend implement it.
type Repository interface {
	Create(ctx context.Context, w *Workflow) error
	GetByID(ctx context.Context, id uuid.UUID) (*Workflow, error)
	Update(ctx context.Context, w *Workflow) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Workflow, int, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*Workflow, int, error)
}
