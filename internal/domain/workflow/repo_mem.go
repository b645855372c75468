package workflow

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
	items map[uuid.UUID]*Workflow
}

func NewRepoMem() Repository {
	return &repoMem{items: make(map[uuid.UUID]*Workflow)}
}

func (r *repoMem) Create(_ context.Context, w *Workflow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w.ID = uuid.New()
	now := time.Now()
	w.CreatedAt = now
	w.UpdatedAt = now
	cp := *w
	r.items[w.ID] = &cp
	return nil
}

func (r *repoMem) GetByID(_ context.Context, id uuid.UUID) (*Workflow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("workflow %s not found", id)
	}
	cp := *w
	return &cp, nil
}

func (r *repoMem) Update(_ context.Context, w *Workflow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[w.ID]
	if !ok {
		return fmt.Errorf("workflow %s not found", w.ID)
	}
	w.CreatedAt = existing.CreatedAt
	w.UpdatedAt = time.Now()
	cp := *w
	r.items[w.ID] = &cp
	return nil
}

func (r *repoMem) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *repoMem) List(_ context.Context, limit, offset int) ([]*Workflow, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.all(), limit, offset)
}

func (r *repoMem) Search(_ context.Context, query string, limit, offset int) ([]*Workflow, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	var matched []*Workflow
	for _, w := range r.all() {
		if strings.Contains(strings.ToLower(w.Name), q) ||
			strings.Contains(strings.ToLower(w.Prompt), q) {
			matched = append(matched, w)
		}
	}
	return page(matched, limit, offset)
}

func (r *repoMem) all() []*Workflow {
	out := make([]*Workflow, 0, len(r.items))
	for _, w := range r.items {
		cp := *w
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

func page(items []*Workflow, limit, offset int) ([]*Workflow, int, error) {
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
