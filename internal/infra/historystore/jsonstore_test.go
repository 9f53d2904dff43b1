package historystore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/infra/sealer"
)

func fixedIDs(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

func record(kind domain.InputKind, value string, at time.Time) domain.Record {
	return domain.Record{
		CreatedAt: at,
		Analysis: domain.Analysis{
			Input:  domain.Input{Kind: kind, Value: value},
			Digits: "0112",
			Result: domain.Resolution{
				Raw:      domain.CountMap{domain.FieldResting: 1, domain.FieldDoom: 1},
				Adjusted: domain.CountMap{domain.FieldResting: 1, domain.FieldDoom: 1},
				Log:      []domain.Adjustment{},
			},
			Candidates: []domain.Candidate{{Numeral: "1333", Chain: domain.Chain{"13", "33", "33"}, Requested: 4}},
		},
	}
}

func TestSave_CreatesPlainJSONFile(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIDs(fixedIDs("abc")))

	at := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	id, err := store.Save(record(domain.InputID, "A123456789", at))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if id != "abc" {
		t.Fatalf("expected id=abc, got=%s", id)
	}

	wantFile := filepath.Join(tmp, "history", "20260203T101112Z_id_abc.json")
	b, err := os.ReadFile(wantFile)
	if err != nil {
		t.Fatalf("expected file at %s: %v", wantFile, err)
	}
	if !bytes.Contains(b, []byte(`"A123456789"`)) {
		t.Fatalf("expected plain JSON, got %s", b)
	}

	got, err := store.Load("abc")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Analysis.Input.Value != "A123456789" || got.Analysis.Numerals()[0] != "1333" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.Analysis.Result.Adjusted.Get(domain.FieldDoom) != 1 {
		t.Fatalf("expected counts to round-trip, got %v", got.Analysis.Result.Adjusted)
	}
}

func TestSave_SealedRecordsAreNotReadable(t *testing.T) {
	tmp := t.TempDir()
	box, err := sealer.LoadOrCreateKey(filepath.Join(tmp, ".numdna", "secret.key"))
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithSealer(box), WithIDs(fixedIDs("sealed1")))

	if _, err := store.Save(record(domain.InputPhone, "0912345678", time.Now())); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	refs, err := store.List()
	if err != nil || len(refs) != 1 {
		t.Fatalf("List: refs=%v err=%v", refs, err)
	}
	if !strings.HasSuffix(refs[0].File, ".enc") {
		t.Fatalf("expected .enc file, got %s", refs[0].File)
	}

	raw, _ := os.ReadFile(filepath.Join(tmp, "history", refs[0].File))
	if bytes.Contains(raw, []byte("0912345678")) {
		t.Fatalf("sealed file leaks plaintext")
	}

	got, err := store.Load("sealed1")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Analysis.Input.Value != "0912345678" {
		t.Fatalf("unexpected value %q", got.Analysis.Input.Value)
	}

	plain := NewJSONStore(tmp, domain.DefaultConfig())
	if _, err := plain.Load("sealed1"); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig without key, got %v", err)
	}
}

func TestList_NewestFirstAndPrefixLookup(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(),
		WithIDs(fixedIDs("aaaa-1", "aaab-2", "bbbb-3")), WithIndex(true))

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, kind := range []domain.InputKind{domain.InputName, domain.InputBirth, domain.InputCustom} {
		if _, err := store.Save(record(kind, fmt.Sprint(i), base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("Save #%d: %v", i, err)
		}
	}

	refs, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(refs) != 3 || refs[0].ID != "bbbb-3" || refs[2].ID != "aaaa-1" {
		t.Fatalf("unexpected order: %+v", refs)
	}
	if refs[1].Kind != domain.InputBirth {
		t.Fatalf("expected kind from filename, got %s", refs[1].Kind)
	}

	if _, err := store.Load("bb"); err != nil {
		t.Fatalf("unique prefix should resolve: %v", err)
	}
	if _, err := store.Load("aaa"); !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected ambiguous prefix error, got %v", err)
	}
	if _, err := store.Load("zzz"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmp, "history", "index.jsonl")); err != nil {
		t.Fatalf("expected index journal: %v", err)
	}
}

func TestDeleteAndDeleteAll(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIDs(fixedIDs("one", "two", "three")))

	for i := 0; i < 3; i++ {
		if _, err := store.Save(record(domain.InputID, "A123456789", time.Now().Add(time.Duration(i)*time.Second))); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	if err := store.Delete("two"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete("two"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound on second delete, got %v", err)
	}

	n, err := store.DeleteAll()
	if err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 deleted, got %d", n)
	}

	refs, _ := store.List()
	if len(refs) != 0 {
		t.Fatalf("expected empty history, got %+v", refs)
	}
}

func TestList_MissingDirIsEmpty(t *testing.T) {
	refs, err := NewJSONStore(t.TempDir(), domain.DefaultConfig()).List()
	if err != nil || len(refs) != 0 {
		t.Fatalf("expected empty list, got refs=%v err=%v", refs, err)
	}
}
