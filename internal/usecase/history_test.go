package usecase

import (
	"testing"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

func TestHistory_ShowQueryDelete(t *testing.T) {
	store := &fakeStore{}
	_, _ = store.Save(domain.Record{ID: "abc123", Analysis: domain.Analysis{
		Input:      domain.Input{Kind: domain.InputBirth, Value: "1990/05/17"},
		Candidates: []domain.Candidate{{Numeral: "1368"}},
	}})
	_, _ = store.Save(domain.Record{ID: "def456"})

	uc := NewHistory(store)

	refs, err := uc.List()
	if err != nil || len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %v (err=%v)", refs, err)
	}

	rec, err := uc.Show("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != "abc123" {
		t.Fatalf("expected abc123, got %q", rec.ID)
	}

	got, err := uc.Query("abc", "$.analysis.candidates[0].numeral")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1368" {
		t.Fatalf("expected 1368, got %q", got)
	}

	if err := uc.Delete("abc123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Show("abc"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	n, err := uc.DeleteAll()
	if err != nil || n != 1 {
		t.Fatalf("expected 1 removed, got %d (err=%v)", n, err)
	}
}

func TestHistory_QueryMissingRecord(t *testing.T) {
	_, err := NewHistory(&fakeStore{}).Query("nope", "$.id")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
