package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mediagent/mediagent/internal/domain/patient"
)

func TestPatientCRUD(t *testing.T) {
	ctx := context.Background()
	repo := patient.NewRepoPG(globalDB.Pool)

	t.Run("Create", func(t *testing.T) {
		dob := time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)
		p := &patient.Patient{
			FirstName:      "John",
			LastName:       "Doe",
			Gender:         ptrStr("male"),
			DateOfBirth:    ptrTime(dob),
			Email:          ptrStr("john.doe@example.com"),
			Phone:          ptrStr("+1-555-0100"),
			Allergies:      []string{"penicillin"},
			Medications:    []string{"metformin"},
			MedicalHistory: []string{"type 2 diabetes"},
		}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create patient: %v", err)
		}
		if p.ID == uuid.Nil {
			t.Fatal("expected non-nil ID after create")
		}
	})

	t.Run("GetByID", func(t *testing.T) {
		p := createTestPatient(t, ctx, globalDB.Pool, "Jane", "Smith")

		fetched, err := repo.GetByID(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if fetched.FirstName != "Jane" {
			t.Errorf("expected FirstName=Jane, got %s", fetched.FirstName)
		}
		if fetched.LastName != "Smith" {
			t.Errorf("expected LastName=Smith, got %s", fetched.LastName)
		}
	})

	t.Run("Update", func(t *testing.T) {
		p := createTestPatient(t, ctx, globalDB.Pool, "UpdateFirst", "UpdateLast")

		p.FirstName = "UpdatedFirst"
		p.Email = ptrStr("updated@example.com")
		p.Allergies = append(p.Allergies, "latex")
		if err := repo.Update(ctx, p); err != nil {
			t.Fatalf("Update: %v", err)
		}

		fetched, err := repo.GetByID(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetByID after update: %v", err)
		}
		if fetched.FirstName != "UpdatedFirst" {
			t.Errorf("expected FirstName=UpdatedFirst, got %s", fetched.FirstName)
		}
		if fetched.Email == nil || *fetched.Email != "updated@example.com" {
			t.Errorf("expected updated email, got %v", fetched.Email)
		}
		if len(fetched.Allergies) != 1 || fetched.Allergies[0] != "latex" {
			t.Errorf("expected allergies [latex], got %v", fetched.Allergies)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		p := createTestPatient(t, ctx, globalDB.Pool, "DeleteFirst", "DeleteLast")

		if err := repo.Delete(ctx, p.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := repo.GetByID(ctx, p.ID); err == nil {
			t.Error("expected error fetching deleted patient")
		}
	})

	t.Run("List", func(t *testing.T) {
		createTestPatient(t, ctx, globalDB.Pool, "ListFirst", "ListLast")

		items, total, err := repo.List(ctx, 10, 0)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if total < 1 {
			t.Errorf("expected total >= 1, got %d", total)
		}
		if len(items) == 0 {
			t.Error("expected at least one patient in list")
		}
	})

	t.Run("Search", func(t *testing.T) {
		createTestPatient(t, ctx, globalDB.Pool, "Zelda", "Uniquename")

		items, total, err := repo.Search(ctx, "uniquename", 10, 0)
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if total != 1 {
			t.Errorf("expected total=1, got %d", total)
		}
		if len(items) != 1 || items[0].LastName != "Uniquename" {
			t.Errorf("expected to find Uniquename, got %v", items)
		}
	})
}
