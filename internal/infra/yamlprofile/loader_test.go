package yamlprofile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadProfile_Valid(t *testing.T) {
	p := filepath.Join(t.TempDir(), "family.yaml")
	writeFile(t, p, `
name: Family
generate:
  length: 6
  pad: false
  affix: {value: "88", position: end}
inputs:
  - label: dad
    kind: id
    value: A123456789
  - kind: Phone
    value: "0912345678"
`)

	got, err := NewLoader().LoadProfile(p)
	if err != nil {
		t.Fatalf("LoadProfile error: %v", err)
	}

	if got.Name != "Family" || len(got.Inputs) != 2 {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if got.Inputs[1].Label != "phone-2" || got.Inputs[1].Input.Kind != domain.InputPhone {
		t.Fatalf("unexpected second input: %+v", got.Inputs[1])
	}

	req := got.Generate.Apply(domain.GenerateRequest{Length: 4, Count: 5, Pad: true})
	want := domain.GenerateRequest{
		Length: 6,
		Count:  5,
		Pad:    false,
		Affix:  domain.Affix{Value: "88", Position: domain.AffixEnd},
	}
	if req != want {
		t.Fatalf("want %+v, got %+v", want, req)
	}
}

func TestLoadProfile_Invalid(t *testing.T) {
	cases := map[string]struct {
		content string
		field   string
	}{
		"missing name": {"inputs:\n  - {kind: id, value: A1}\n", "name"},
		"no inputs":    {"name: x\n", "inputs"},
		"bad kind":     {"name: x\ninputs:\n  - {kind: passport, value: A1}\n", "inputs[0].kind"},
		"empty value":  {"name: x\ninputs:\n  - {kind: id, value: ''}\n", "inputs[0].value"},
		"bad position": {"name: x\ngenerate:\n  affix: {value: A, position: top}\ninputs:\n  - {kind: id, value: A1}\n", "generate.affix.position"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "bad.yaml")
			writeFile(t, p, tc.content)

			_, err := NewLoader().LoadProfile(p)
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), "field "+tc.field) {
				t.Fatalf("expected field %s in error, got %v", tc.field, err)
			}
		})
	}
}

func TestListProfiles_SortedByName(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "profiles", "b.yaml"), "name: Zeta\ninputs: []\n")
	writeFile(t, filepath.Join(root, "profiles", "a.yml"), "inputs: []\n")
	writeFile(t, filepath.Join(root, "profiles", "notes.txt"), "ignored")

	refs, err := NewLoader().ListProfiles(root)
	if err != nil {
		t.Fatalf("ListProfiles error: %v", err)
	}
	if len(refs) != 2 || refs[0].Name != "Zeta" || refs[1].Name != "a" {
		t.Fatalf("unexpected refs: %+v", refs)
	}
}

func TestResolve(t *testing.T) {
	l := NewLoader(WithProfilesDir("batches"))
	if got := l.Resolve("/ws", "family"); got != filepath.Join("/ws", "batches", "family.yaml") {
		t.Fatalf("unexpected path %s", got)
	}
	if got := l.Resolve("/ws", "other/x.yaml"); got != filepath.Join("/ws", "other", "x.yaml") {
		t.Fatalf("unexpected path %s", got)
	}
}
