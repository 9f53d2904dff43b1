package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/infra/strokes"
	"github.com/Shan319/number-dna-analyze/internal/infra/workspacefinder"
	"github.com/Shan319/number-dna-analyze/internal/infra/yamlprofile"
)

func TestInitializer_Init_CreatesUsableWorkspace(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	for _, d := range []string{"history", "profiles", "strokes", filepath.Join(".numdna", "logs")} {
		info, err := os.Stat(filepath.Join(tmp, d))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected dir %s, err=%v", d, err)
		}
	}

	cfg, err := workspacefinder.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("template config does not load: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("template config should match defaults:\n%+v\n%+v", cfg, domain.DefaultConfig())
	}

	p, err := yamlprofile.NewLoader().LoadProfile(filepath.Join(tmp, "profiles", "sample.yaml"))
	if err != nil {
		t.Fatalf("sample profile does not load: %v", err)
	}
	if len(p.Inputs) != 4 {
		t.Fatalf("expected 4 sample inputs, got %d", len(p.Inputs))
	}

	tbl, err := strokes.Load(filepath.Join(tmp, cfg.Strokes.Path), cfg.Strokes.Encoding, nil)
	if err != nil {
		t.Fatalf("sample stroke table does not load: %v", err)
	}
	if n, ok := tbl.Strokes('王'); !ok || n != 4 {
		t.Fatalf("expected 王=4, got %d %v", n, ok)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "numdna.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing numdna.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read numdna.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected numdna.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read numdna.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "numdna:") {
		t.Fatalf("expected numdna.yaml overwritten with template, got %q", string(b))
	}
}
