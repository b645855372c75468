package patient

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// repoMem is the in-memory storage backend, selected with
// STORAGE_BACKEND=memory. Ordering matches the Postgres backend
// (newest first).
type repoMem struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*Patient
}

func NewRepoMem() Repository {
	return &repoMem{items: make(map[uuid.UUID]*Patient)}
}

func (r *repoMem) Create(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.New()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *repoMem) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("patient %s not found", id)
	}
	cp := *p
	return &cp, nil
}

func (r *repoMem) Update(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[p.ID]
	if !ok {
		return fmt.Errorf("patient %s not found", p.ID)
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *repoMem) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *repoMem) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.all(), limit, offset)
}

func (r *repoMem) Search(_ context.Context, query string, limit, offset int) ([]*Patient, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	var matched []*Patient
	for _, p := range r.all() {
		if strings.Contains(strings.ToLower(p.FullName()), q) ||
			(p.Phone != nil && strings.Contains(strings.ToLower(*p.Phone), q)) ||
			(p.Email != nil && strings.Contains(strings.ToLower(*p.Email), q)) {
			matched = append(matched, p)
		}
	}
	return page(matched, limit, offset)
}

// all returns copies sorted newest first. Caller must hold the lock.
func (r *repoMem) all() []*Patient {
	out := make([]*Patient, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
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

func page(items []*Patient, limit, offset int) ([]*Patient, int, error) {
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
