package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mediagent/mediagent/internal/nlp"
)

type Service struct {
	reports Repository
}

func NewService(repo Repository) *Service {
	return &Service{reports: repo}
}

var validStatuses = map[string]bool{
	StatusDraft: true, StatusCompleted: true, StatusReviewed: true,
}

func (s *Service) Create(ctx context.Context, m *MedicalReport) error {
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if m.Status == "" {
		m.Status = StatusDraft
	}
	if !validStatuses[m.Status] {
		return fmt.Errorf("invalid status: %s", m.Status)
	}
	return s.reports.Create(ctx, m)
}

// CreateFromResult builds a draft report out of a processing run.
func (s *Service) CreateFromResult(ctx context.Context, patientID *uuid.UUID, title, transcript, language string, data nlp.ExtractedData, sugg nlp.TreatmentSuggestions, confidence float64) (*MedicalReport, error) {
	if strings.TrimSpace(title) == "" {
		title = "Consultation report"
	}
	m := &MedicalReport{
		PatientID:   patientID,
		Title:       title,
		Status:      StatusDraft,
		Transcript:  transcript,
		Language:    language,
		Symptoms:    data.Symptoms,
		Conditions:  data.DiagnosedConditions,
		Medications: data.Medications,
		Allergies:   data.Allergies,
		Vitals:      data.Vitals,
		Suggestions: sugg,
		Confidence:  confidence,
	}
	if err := s.reports.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*MedicalReport, error) {
	return s.reports.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, m *MedicalReport) error {
	if !validStatuses[m.Status] {
		return fmt.Errorf("invalid status: %s", m.Status)
	}
	current, err := s.reports.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	if !CanTransition(current.Status, m.Status) {
		return fmt.Errorf("cannot transition report from %s to %s", current.Status, m.Status)
	}
	return s.reports.Update(ctx, m)
}

// SetStatus moves only the review status, leaving content untouched.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status string) (*MedicalReport, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	m, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(m.Status, status) {
		return nil, fmt.Errorf("cannot transition report from %s to %s", m.Status, status)
	}
	m.Status = status
	if err := s.reports.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.reports.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*MedicalReport, int, error) {
	return s.reports.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*MedicalReport, int, error) {
	return s.reports.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) Search(ctx context.Context, query string, limit, offset int) ([]*MedicalReport, int, error) {
	if strings.TrimSpace(query) == "" {
		return s.reports.List(ctx, limit, offset)
	}
	return s.reports.Search(ctx, query, limit, offset)
}
