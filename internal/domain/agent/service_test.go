package agent

import (
	"context"
	"testing"
)

func newTestService() *Service { return NewService(NewRepoMem()) }

func TestCreate_DefaultsToIdle(t *testing.T) {
	svc := newTestService()
	a := &Agent{Name: "News digest agent", Goals: []string{"summarize daily news"}}
	if err := svc.Create(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != StatusIdle {
		t.Errorf("expected idle status, got %q", a.Status)
	}
}

func TestCreate_MissingName(t *testing.T) {
	svc := newTestService()
	if err := svc.Create(context.Background(), &Agent{}); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestSetStatus_Lifecycle(t *testing.T) {
	svc := newTestService()
	a := &Agent{Name: "A"}
	svc.Create(context.Background(), a)

	steps := []string{StatusRunning, StatusPaused, StatusRunning, StatusCompleted}
	for _, next := range steps {
		if _, err := svc.SetStatus(context.Background(), a.ID, next); err != nil {
			t.Fatalf("transition to %s should be allowed: %v", next, err)
		}
	}
}

func TestSetStatus_CompletedIsTerminal(t *testing.T) {
	svc := newTestService()
	a := &Agent{Name: "A"}
	svc.Create(context.Background(), a)
	svc.SetStatus(context.Background(), a.ID, StatusRunning)
	svc.SetStatus(context.Background(), a.ID, StatusCompleted)

	if _, err := svc.SetStatus(context.Background(), a.ID, StatusRunning); err == nil {
		t.Fatal("completed→running should be rejected")
	}
}

func TestSetStatus_IdleCannotPause(t *testing.T) {
	svc := newTestService()
	a := &Agent{Name: "A"}
	svc.Create(context.Background(), a)

	if _, err := svc.SetStatus(context.Background(), a.ID, StatusPaused); err == nil {
		t.Fatal("idle→paused should be rejected")
	}
}

func TestSetStatus_ErrorResetsToIdle(t *testing.T) {
	svc := newTestService()
	a := &Agent{Name: "A"}
	svc.Create(context.Background(), a)
	svc.SetStatus(context.Background(), a.ID, StatusRunning)

	if _, err := svc.SetStatus(context.Background(), a.ID, StatusError); err != nil {
		t.Fatalf("running→error should be allowed: %v", err)
	}
	if _, err := svc.SetStatus(context.Background(), a.ID, StatusIdle); err != nil {
		t.Fatalf("error→idle reset should be allowed: %v", err)
	}
}

func TestSearch_NameAndDescription(t *testing.T) {
	svc := newTestService()
	svc.Create(context.Background(), &Agent{Name: "Slack notifier", Description: "posts updates"})
	svc.Create(context.Background(), &Agent{Name: "Crawler", Description: "scans news sites"})

	_, total, _ := svc.Search(context.Background(), "slack", 10, 0)
	if total != 1 {
		t.Errorf("expected 1 name match, got %d", total)
	}
	_, total, _ = svc.Search(context.Background(), "news", 10, 0)
	if total != 1 {
		t.Errorf("expected 1 description match, got %d", total)
	}
	_, total, _ = svc.Search(context.Background(), "", 10, 0)
	if total != 2 {
		t.Errorf("blank query should list all, got %d", total)
	}
}
