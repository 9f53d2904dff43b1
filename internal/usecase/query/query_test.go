package query

import (
	"strings"
	"testing"
	"time"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

func sampleRecord() domain.Record {
	return domain.Record{
		ID:        "0b7a",
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Analysis: domain.Analysis{
			Input:  domain.Input{Kind: domain.InputPhone, Value: "0912345678"},
			Digits: "0912345678",
			Result: domain.Resolution{
				Raw:      domain.CountMap{domain.FieldDoom: 2},
				Adjusted: domain.CountMap{domain.FieldDoom: 2},
				Log:      []domain.Adjustment{},
			},
			Candidates: []domain.Candidate{
				{Numeral: "1333", Requested: 4},
				{Numeral: "1368", Requested: 4},
			},
		},
	}
}

func TestRecord_Scalars(t *testing.T) {
	rec := sampleRecord()

	cases := map[string]string{
		"$.id":                             "0b7a",
		"$.analysis.input.kind":            "phone",
		"$.analysis.candidates[1].numeral": "1368",
		"$.analysis.result.adjusted.Doom":  "2",
	}
	for expr, want := range cases {
		got, err := Record(rec, expr)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", expr, err)
		}
		if got != want {
			t.Fatalf("%s: expected %q, got %q", expr, want, got)
		}
	}
}

func TestRecord_ArrayIsIndentedJSON(t *testing.T) {
	got, err := Record(sampleRecord(), "$.analysis.candidates[*].numeral")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `"1333"`) || !strings.Contains(got, `"1368"`) {
		t.Fatalf("expected both numerals, got %s", got)
	}
	if !strings.HasPrefix(got, "[\n") {
		t.Fatalf("expected indented array, got %s", got)
	}
}

func TestJSON_EmptyExpression(t *testing.T) {
	_, err := JSON([]byte(`{"a":1}`), "  ")
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestJSON_BadExpression(t *testing.T) {
	_, err := JSON([]byte(`{"a":1}`), "$.a[")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestJSON_NullIsNotFound(t *testing.T) {
	_, err := JSON([]byte(`{"a":null}`), "$.a")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestJSON_MissingKeyFails(t *testing.T) {
	if _, err := JSON([]byte(`{"a":1}`), "$.b"); err == nil {
		t.Fatalf("expected error for missing key")
	}
}

func TestJSON_NotJSON(t *testing.T) {
	_, err := JSON([]byte("hello"), "$.a")
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected execution error, got %v", err)
	}
}
