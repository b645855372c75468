package patient

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func newTestService() *Service { return NewService(NewRepoMem()) }

func TestCreate_Success(t *testing.T) {
	svc := newTestService()
	p := &Patient{FirstName: "Anita", LastName: "Menon"}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected generated id")
	}
}

func TestCreate_MissingName(t *testing.T) {
	svc := newTestService()
	if err := svc.Create(context.Background(), &Patient{LastName: "Menon"}); err == nil {
		t.Fatal("expected error for missing first name")
	}
	if err := svc.Create(context.Background(), &Patient{FirstName: "Anita"}); err == nil {
		t.Fatal("expected error for missing last name")
	}
	if err := svc.Create(context.Background(), &Patient{FirstName: "  ", LastName: "Menon"}); err == nil {
		t.Fatal("expected error for whitespace-only first name")
	}
}

func TestCreate_InvalidGender(t *testing.T) {
	svc := newTestService()
	p := &Patient{FirstName: "Anita", LastName: "Menon", Gender: strPtr("bogus")}
	if err := svc.Create(context.Background(), p); err == nil {
		t.Fatal("expected error for invalid gender")
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Get(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error")
	}
}

func TestUpdate(t *testing.T) {
	svc := newTestService()
	p := &Patient{FirstName: "Anita", LastName: "Menon"}
	svc.Create(context.Background(), p)

	p.Phone = strPtr("555-0101")
	if err := svc.Update(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := svc.Get(context.Background(), p.ID)
	if got.Phone == nil || *got.Phone != "555-0101" {
		t.Error("expected phone to be updated")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService()
	p := &Patient{ID: uuid.New(), FirstName: "Anita", LastName: "Menon"}
	if err := svc.Update(context.Background(), p); err == nil {
		t.Fatal("expected error")
	}
}

func TestDelete(t *testing.T) {
	svc := newTestService()
	p := &Patient{FirstName: "Anita", LastName: "Menon"}
	svc.Create(context.Background(), p)
	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(context.Background(), p.ID); err == nil {
		t.Fatal("expected error after delete")
	}
}

func TestSearch_ByNamePhoneEmail(t *testing.T) {
	svc := newTestService()
	svc.Create(context.Background(), &Patient{FirstName: "Anita", LastName: "Menon", Phone: strPtr("555-0101")})
	svc.Create(context.Background(), &Patient{FirstName: "Ravi", LastName: "Kumar", Email: strPtr("ravi@example.com")})

	items, total, err := svc.Search(context.Background(), "menon", 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || items[0].LastName != "Menon" {
		t.Errorf("expected 1 match on name, got %d", total)
	}

	_, total, _ = svc.Search(context.Background(), "ravi@", 10, 0)
	if total != 1 {
		t.Errorf("expected 1 match on email, got %d", total)
	}

	_, total, _ = svc.Search(context.Background(), "0101", 10, 0)
	if total != 1 {
		t.Errorf("expected 1 match on phone, got %d", total)
	}
}

func TestSearch_EmptyQueryListsAll(t *testing.T) {
	svc := newTestService()
	svc.Create(context.Background(), &Patient{FirstName: "Anita", LastName: "Menon"})
	svc.Create(context.Background(), &Patient{FirstName: "Ravi", LastName: "Kumar"})
	_, total, err := svc.Search(context.Background(), "  ", 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 patients, got %d", total)
	}
}

func TestList_Pagination(t *testing.T) {
	svc := newTestService()
	for i := 0; i < 5; i++ {
		svc.Create(context.Background(), &Patient{FirstName: "P", LastName: "L"})
	}
	items, total, err := svc.List(context.Background(), 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 5 || len(items) != 2 {
		t.Errorf("expected total 5, page 2; got total %d, page %d", total, len(items))
	}
	items, _, _ = svc.List(context.Background(), 2, 4)
	if len(items) != 1 {
		t.Errorf("expected final page of 1, got %d", len(items))
	}
	items, _, _ = svc.List(context.Background(), 2, 10)
	if len(items) != 0 {
		t.Errorf("expected empty page past end, got %d", len(items))
	}
}
