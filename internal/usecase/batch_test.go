package usecase

import (
	"context"
	"testing"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

func intPtr(n int) *int { return &n }

func sampleProfile() domain.Profile {
	return domain.Profile{
		Name: "family",
		Inputs: []domain.ProfileInput{
			{Label: "mobile", Input: domain.Input{Kind: domain.InputPhone, Value: "0912345678"}},
			{Label: "id", Input: domain.Input{Kind: domain.InputID, Value: "A123456788"}},
			{Label: "birthday", Input: domain.Input{Kind: domain.InputBirth, Value: "1990/05/17"}},
		},
		Generate: domain.GenerateOverride{Length: intPtr(6)},
	}
}

func TestBatch_ContinuesPastFailedInputs(t *testing.T) {
	store := &fakeStore{}
	uc := NewBatch(fakeProfiles{prof: sampleProfile()}, NewAnalyze(nil, WithHistory(store)), nil)

	base := AnalyzeRequest{
		Generate: domain.GenerateRequest{Length: 4, Count: 2, Pad: true},
		Seed:     11,
		Save:     true,
	}
	res, err := uc.Execute(context.Background(), "profiles/family.yaml", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Profile != "family" || len(res.Items) != 3 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Failed() != 1 || res.Items[1].Err == "" {
		t.Fatalf("expected only the id input to fail, got %+v", res.Items)
	}

	for _, i := range []int{0, 2} {
		it := res.Items[i]
		if it.Err != "" {
			t.Fatalf("%s: unexpected error %s", it.Label, it.Err)
		}
		for _, c := range it.Result.Analysis.Candidates {
			if len(c.Numeral) != 6 {
				t.Fatalf("%s: expected profile length 6, got %q", it.Label, c.Numeral)
			}
		}
	}
	if len(store.saved) != 2 {
		t.Fatalf("expected 2 saved records, got %d", len(store.saved))
	}
}

func TestBatch_InvalidOverride(t *testing.T) {
	prof := sampleProfile()
	prof.Generate.Count = intPtr(0)

	uc := NewBatch(fakeProfiles{prof: prof}, NewAnalyze(nil), nil)
	_, err := uc.Execute(context.Background(), "p.yaml", AnalyzeRequest{
		Generate: domain.GenerateRequest{Length: 4, Count: 2},
	})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
}

func TestBatch_LoaderError(t *testing.T) {
	want := &domain.OpError{Op: "fake.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	uc := NewBatch(fakeProfiles{err: want}, NewAnalyze(nil), nil)

	_, err := uc.Execute(context.Background(), "missing.yaml", AnalyzeRequest{})
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
