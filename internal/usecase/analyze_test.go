package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

func phoneRequest(value string) AnalyzeRequest {
	return AnalyzeRequest{
		Input:    domain.Input{Kind: domain.InputPhone, Value: value},
		Generate: domain.GenerateRequest{Length: 4, Count: 3, Pad: true},
		Seed:     7,
		Save:     true,
	}
}

func TestAnalyze_FullPipelineSaves(t *testing.T) {
	store := &fakeStore{}
	uc := NewAnalyze(nil, WithHistory(store))

	res, err := uc.Execute(context.Background(), phoneRequest("0912345678"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := res.Analysis
	if a.Digits != "0912345678" {
		t.Fatalf("unexpected digits %q", a.Digits)
	}
	if len(a.Pairs) == 0 || len(a.Labels) != len(a.Pairs) {
		t.Fatalf("expected one label per pair, got %d pairs %d labels", len(a.Pairs), len(a.Labels))
	}
	if a.Empty {
		t.Fatalf("did not expect empty analysis")
	}
	if len(a.Candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(a.Candidates))
	}
	for _, c := range a.Candidates {
		if len(c.Numeral) != 4 || c.Degraded {
			t.Fatalf("expected full-length candidate, got %+v", c)
		}
	}

	if res.RecordID != "rec-1" {
		t.Fatalf("expected record id rec-1, got %q", res.RecordID)
	}
	if len(store.saved) != 1 || store.saved[0].Analysis.Digits != a.Digits {
		t.Fatalf("expected analysis to be saved, got %+v", store.saved)
	}
}

func TestAnalyze_SaveDisabled(t *testing.T) {
	store := &fakeStore{}
	uc := NewAnalyze(nil, WithHistory(store))

	req := phoneRequest("0912345678")
	req.Save = false

	res, err := uc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RecordID != "" || len(store.saved) != 0 {
		t.Fatalf("expected nothing saved, got id=%q saved=%d", res.RecordID, len(store.saved))
	}
}

func TestAnalyze_BlankInputIsEmpty(t *testing.T) {
	store := &fakeStore{}
	uc := NewAnalyze(nil, WithHistory(store))

	for _, req := range []AnalyzeRequest{
		phoneRequest("   "),
		{Input: domain.Input{Kind: domain.InputCustom, Value: "7"}, Generate: domain.GenerateRequest{Length: 4, Count: 1}},
	} {
		res, err := uc.Execute(context.Background(), req)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", req.Input.Value, err)
		}
		if !res.Analysis.Empty {
			t.Fatalf("%q: expected empty analysis", req.Input.Value)
		}
		if len(res.Analysis.Candidates) != 0 || res.Analysis.Result.Adjusted.Total() != 0 {
			t.Fatalf("%q: expected no counts and no candidates, got %+v", req.Input.Value, res.Analysis)
		}
	}
	if len(store.saved) != 0 {
		t.Fatalf("empty analyses must not be saved")
	}
}

func TestAnalyze_ValidationToggle(t *testing.T) {
	req := AnalyzeRequest{
		Input:    domain.Input{Kind: domain.InputID, Value: "A123456788"},
		Generate: domain.GenerateRequest{Length: 4, Count: 1, Pad: true},
		Seed:     1,
	}

	_, err := NewAnalyze(nil).Execute(context.Background(), req)
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	res, err := NewAnalyze(nil, WithValidation(false)).Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error with validation off: %v", err)
	}
	if res.Analysis.Digits != "01123456788" {
		t.Fatalf("unexpected digits %q", res.Analysis.Digits)
	}
}

func TestAnalyze_NameUsesStrokeTable(t *testing.T) {
	uc := NewAnalyze(strokeMap{'王': 4, '小': 3, '明': 8})

	req := AnalyzeRequest{
		Input:    domain.Input{Kind: domain.InputName, Value: "王小明"},
		Generate: domain.GenerateRequest{Length: 4, Count: 1, Pad: true},
		Seed:     3,
	}
	res, err := uc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Analysis.Digits != "438" {
		t.Fatalf("expected 438, got %q", res.Analysis.Digits)
	}

	req.Input.Value = "王大明"
	_, err = uc.Execute(context.Background(), req)
	if !errors.Is(err, domain.ErrInvalidCharacter) {
		t.Fatalf("expected invalid character, got %v", err)
	}
	var ce *domain.CharacterError
	if !errors.As(err, &ce) || ce.Char != '大' {
		t.Fatalf("expected error naming 大, got %v", err)
	}
}

func TestAnalyze_RejectsBadRequestBeforeWork(t *testing.T) {
	store := &fakeStore{}
	uc := NewAnalyze(nil, WithHistory(store))

	req := phoneRequest("not a phone")
	req.Generate.Count = 0

	_, err := uc.Execute(context.Background(), req)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}

	req = phoneRequest("0912345678")
	req.Generate.Affix = domain.Affix{Value: "A1", Position: domain.AffixEnd}
	_, err = uc.Execute(context.Background(), req)
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid affix, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("nothing should be saved")
	}
}

func TestAnalyze_SameSeedSameCandidates(t *testing.T) {
	uc := NewAnalyze(nil)
	req := phoneRequest("0987654321")
	req.Generate.Count = 5
	req.Generate.Length = 8

	first, err := uc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first.Analysis.Numerals(), second.Analysis.Numerals()) {
		t.Fatalf("expected identical numerals, got %v and %v", first.Analysis.Numerals(), second.Analysis.Numerals())
	}
}

func TestAnalyze_SaveErrorIsReturned(t *testing.T) {
	boom := &domain.OpError{Op: "fake.save", Kind: domain.KindExecution, Err: errors.New("disk full")}
	uc := NewAnalyze(nil, WithHistory(&fakeStore{saveErr: boom}))

	res, err := uc.Execute(context.Background(), phoneRequest("0912345678"))
	if !errors.Is(err, boom) {
		t.Fatalf("expected save error, got %v", err)
	}
	if len(res.Analysis.Candidates) == 0 {
		t.Fatalf("analysis should still be returned alongside the save error")
	}
}

func TestAnalyze_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAnalyze(nil).Execute(ctx, phoneRequest("0912345678"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
