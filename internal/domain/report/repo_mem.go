package report

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
	items map[uuid.UUID]*MedicalReport
}

func NewRepoMem() Repository {
	return &repoMem{items: make(map[uuid.UUID]*MedicalReport)}
}

func (r *repoMem) Create(_ context.Context, m *MedicalReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = uuid.New()
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *repoMem) GetByID(_ context.Context, id uuid.UUID) (*MedicalReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("report %s not found", id)
	}
	cp := *m
	return &cp, nil
}

func (r *repoMem) Update(_ context.Context, m *MedicalReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[m.ID]
	if !ok {
		return fmt.Errorf("report %s not found", m.ID)
	}
	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = time.Now()
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *repoMem) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *repoMem) List(_ context.Context, limit, offset int) ([]*MedicalReport, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.all(), limit, offset)
}

func (r *repoMem) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*MedicalReport, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*MedicalReport
	for _, m := range r.all() {
		if m.PatientID != nil && *m.PatientID == patientID {
			matched = append(matched, m)
		}
	}
	return page(matched, limit, offset)
}

func (r *repoMem) Search(_ context.Context, query string, limit, offset int) ([]*MedicalReport, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	var matched []*MedicalReport
	for _, m := range r.all() {
		if strings.Contains(strings.ToLower(m.Title), q) ||
			strings.Contains(strings.ToLower(m.Transcript), q) {
			matched = append(matched, m)
		}
	}
	return page(matched, limit, offset)
}

func (r *repoMem) all() []*MedicalReport {
	out := make([]*MedicalReport, 0, len(r.items))
	for _, m := range r.items {
		cp := *m
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

func page(items []*MedicalReport, limit, offset int) ([]*MedicalReport, int, error) {
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
