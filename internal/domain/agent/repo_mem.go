package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type repoMem struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*Agent
}

func NewRepoMem() Repository {
	return &repoMem{items: make(map[uuid.UUID]*Agent)}
}

func (r *repoMem) Create(_ context.Context, a *Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = uuid.New()
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *repoMem) GetByID(_ context.Context, id uuid.UUID) (*Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("agent %s not found", id)
	}
	cp := *a
	return &cp, nil
}

func (r *repoMem) Update(_ context.Context, a *Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[a.ID]
	if !ok {
		return fmt.Errorf("agent %s not found", a.ID)
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now()
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *repoMem) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *repoMem) List(_ context.Context, limit, offset int) ([]*Agent, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.all(), limit, offset)
}

func (r *repoMem) Search(_ context.Context, query string, limit, offset int) ([]*Agent, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	var matched []*Agent
	for _, a := range r.all() {
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Description), q) {
			matched = append(matched, a)
		}
	}
	return page(matched, limit, offset)
}

func (r *repoMem) all() []*Agent {
	out := make([]*Agent, 0, len(r.items))
	for _, a := range r.items {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() > out[j].ID.String()
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func page(items []*Agent, limit, offset int) ([]*Agent, int, error) {
	total := len(items)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return items[offset:end], total, nil
}
