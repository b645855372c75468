package report

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/mediagent/mediagent/internal/nlp"
)

func newTestService() *Service { return NewService(NewRepoMem()) }

func TestCreate_DefaultsToDraft(t *testing.T) {
	svc := newTestService()
	m := &MedicalReport{Title: "Follow-up visit"}
	if err := svc.Create(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Status != StatusDraft {
		t.Errorf("expected draft status, got %q", m.Status)
	}
}

func TestCreate_MissingTitle(t *testing.T) {
	svc := newTestService()
	if err := svc.Create(context.Background(), &MedicalReport{}); err == nil {
		t.Fatal("expected error for missing title")
	}
}

func TestCreate_InvalidStatus(t *testing.T) {
	svc := newTestService()
	if err := svc.Create(context.Background(), &MedicalReport{Title: "T", Status: "archived"}); err == nil {
		t.Fatal("expected error for invalid status")
	}
}

func TestCreateFromResult(t *testing.T) {
	svc := newTestService()
	pid := uuid.New()
	data := nlp.ExtractedData{
		Symptoms:            []string{"Headache"},
		DiagnosedConditions: []string{"None diagnosed"},
		Medications:         []string{"None mentioned"},
		Allergies:           []string{"No allergies mentioned"},
		Vitals:              &nlp.Vitals{BloodPressure: "120/80"},
	}
	sugg := nlp.Suggest(data.Symptoms, data.DiagnosedConditions)

	m, err := svc.CreateFromResult(context.Background(), &pid, "", "patient has headache", "en", data, sugg, 0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Title != "Consultation report" {
		t.Errorf("expected default title, got %q", m.Title)
	}
	if m.Status != StatusDraft {
		t.Errorf("expected draft status, got %q", m.Status)
	}
	if m.PatientID == nil || *m.PatientID != pid {
		t.Error("expected patient id to be carried over")
	}
	if m.Vitals == nil || m.Vitals.BloodPressure != "120/80" {
		t.Error("expected vitals to be carried over")
	}
}

func TestSetStatus_ValidLifecycle(t *testing.T) {
	svc := newTestService()
	m := &MedicalReport{Title: "T"}
	svc.Create(context.Background(), m)

	if _, err := svc.SetStatus(context.Background(), m.ID, StatusCompleted); err != nil {
		t.Fatalf("draft→completed should be allowed: %v", err)
	}
	if _, err := svc.SetStatus(context.Background(), m.ID, StatusReviewed); err != nil {
		t.Fatalf("completed→reviewed should be allowed: %v", err)
	}
	if _, err := svc.SetStatus(context.Background(), m.ID, StatusCompleted); err != nil {
		t.Fatalf("reviewed→completed (reopen) should be allowed: %v", err)
	}
}

func TestSetStatus_SkippingForbidden(t *testing.T) {
	svc := newTestService()
	m := &MedicalReport{Title: "T"}
	svc.Create(context.Background(), m)

	if _, err := svc.SetStatus(context.Background(), m.ID, StatusReviewed); err == nil {
		t.Fatal("draft→reviewed should be rejected")
	}
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	svc := newTestService()
	m := &MedicalReport{Title: "T"}
	svc.Create(context.Background(), m)

	if _, err := svc.SetStatus(context.Background(), m.ID, "bogus"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestUpdate_RejectsBadTransition(t *testing.T) {
	svc := newTestService()
	m := &MedicalReport{Title: "T"}
	svc.Create(context.Background(), m)

	m.Status = StatusReviewed
	if err := svc.Update(context.Background(), m); err == nil {
		t.Fatal("expected transition error")
	}
}

func TestListByPatient(t *testing.T) {
	svc := newTestService()
	pid := uuid.New()
	other := uuid.New()
	svc.Create(context.Background(), &MedicalReport{Title: "A", PatientID: &pid})
	svc.Create(context.Background(), &MedicalReport{Title: "B", PatientID: &pid})
	svc.Create(context.Background(), &MedicalReport{Title: "C", PatientID: &other})
	svc.Create(context.Background(), &MedicalReport{Title: "D"})

	_, total, err := svc.ListByPatient(context.Background(), pid, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 reports, got %d", total)
	}
}

func TestSearch_TitleAndTranscript(t *testing.T) {
	svc := newTestService()
	svc.Create(context.Background(), &MedicalReport{Title: "Cardiology consult", Transcript: "chest pain episode"})
	svc.Create(context.Background(), &MedicalReport{Title: "Dermatology", Transcript: "skin rash"})

	_, total, _ := svc.Search(context.Background(), "cardio", 10, 0)
	if total != 1 {
		t.Errorf("expected 1 title match, got %d", total)
	}
	_, total, _ = svc.Search(context.Background(), "rash", 10, 0)
	if total != 1 {
		t.Errorf("expected 1 transcript match, got %d", total)
	}
}

func TestCanTransition_SameStatusNoOp(t *testing.T) {
	if !CanTransition(StatusDraft, StatusDraft) {
		t.Error("same-status transition should be a no-op")
	}
}
