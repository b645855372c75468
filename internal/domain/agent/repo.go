package agent

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for agents. Both the postgres and
// the in-memory backend implement it.
type Repository interface {
	Create(ctx context.Context, a *Agent) error
	GetByID(ctx context.Context, id uuid.UUID) (*Agent, error)
	Update(ctx context.Context, a *Agent) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Agent, int, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*Agent, int, error)
}
