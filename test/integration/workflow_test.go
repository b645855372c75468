package integration

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/mediagent/mediagent/internal/domain/workflow"
)

func TestWorkflowCRUD(t *testing.T) {
	ctx := context.Background()
	repo := workflow.NewRepoPG(globalDB.Pool)

	t.Run("CreateAndGet", func(t *testing.T) {
		doc := workflow.Synthesize("Daily digest", "daily summarize the news and post to slack")
		raw, err := json.Marshal(doc)
		if err != nil {
			t.Fatalf("marshal document: %v", err)
		}

		w := &workflow.Workflow{
			Name:     "Daily digest",
			Prompt:   "daily summarize the news and post to slack",
			Document: raw,
			Status:   workflow.StatusDraft,
		}
		if err := repo.Create(ctx, w); err != nil {
			t.Fatalf("Create workflow: %v", err)
		}
		if w.ID == uuid.Nil {
			t.Fatal("expected non-nil ID after create")
		}

		fetched, err := repo.GetByID(ctx, w.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if fetched.Status != workflow.StatusDraft {
			t.Errorf("expected status=draft, got %s", fetched.Status)
		}

		var got workflow.Document
		if err := json.Unmarshal(fetched.Document, &got); err != nil {
			t.Fatalf("unmarshal stored document: %v", err)
		}
		if len(got.Nodes) != len(doc.Nodes) {
			t.Errorf("expected %d nodes after round-trip, got %d", len(doc.Nodes), len(got.Nodes))
		}
	})

	t.Run("ActivationFields", func(t *testing.T) {
		w := &workflow.Workflow{
			Name:     "Activate me",
			Prompt:   "hourly check the api",
			Document: []byte(`{"name":"Activate me","nodes":[],"connections":{}}`),
			Status:   workflow.StatusDraft,
		}
		if err := repo.Create(ctx, w); err != nil {
			t.Fatalf("Create workflow: %v", err)
		}

		w.Status = workflow.StatusActive
		w.RunnerID = "remote-42"
		if err := repo.Update(ctx, w); err != nil {
			t.Fatalf("Update: %v", err)
		}

		fetched, err := repo.GetByID(ctx, w.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if fetched.Status != workflow.StatusActive {
			t.Errorf("expected status=active, got %s", fetched.Status)
		}
		if fetched.RunnerID != "remote-42" {
			t.Errorf("expected runner_id=remote-42, got %q", fetched.RunnerID)
		}
	})

	t.Run("Search", func(t *testing.T) {
		w := &workflow.Workflow{
			Name:     "Inventory sync pj58",
			Prompt:   "weekly update the spreadsheet",
			Document: []byte(`{"name":"Inventory sync pj58","nodes":[],"connections":{}}`),
			Status:   workflow.StatusDraft,
		}
		if err := repo.Create(ctx, w); err != nil {
			t.Fatalf("Create workflow: %v", err)
		}

		items, total, err := repo.Search(ctx, "pj58", 10, 0)
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if total != 1 || len(items) != 1 {
			t.Fatalf("expected 1 result, got total=%d len=%d", total, len(items))
		}
	})

	t.Run("Delete", func(t *testing.T) {
		w := &workflow.Workflow{
			Name:     "Temp",
			Document: []byte(`{"name":"Temp","nodes":[],"connections":{}}`),
			Status:   workflow.StatusDraft,
		}
		if err := repo.Create(ctx, w); err != nil {
			t.Fatalf("Create workflow: %v", err)
		}
		if err := repo.Delete(ctx, w.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := repo.GetByID(ctx, w.ID); err == nil {
			t.Error("expected error fetching deleted workflow")
		}
	})
}
