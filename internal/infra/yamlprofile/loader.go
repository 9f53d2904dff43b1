package yamlprofile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	profilesDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{profilesDir: "profiles"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithProfilesDir(dir string) Option {
	return func(l *Loader) { l.profilesDir = dir }
}

var _ ports.ProfileLoader = (*Loader)(nil)

func (l *Loader) LoadProfile(path string) (domain.Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Profile{}, &domain.OpError{
			Op:   "yamlprofile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yp yamlProfile
	if err := yaml.Unmarshal(b, &yp); err != nil {
		return domain.Profile{}, &domain.OpError{
			Op:   "yamlprofile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, yp)
}

// Resolve turns a profile name or path into a file path under root.
func (l *Loader) Resolve(root, nameOrPath string) string {
	if strings.ContainsAny(nameOrPath, `/\`) || filepath.Ext(nameOrPath) != "" {
		if filepath.IsAbs(nameOrPath) {
			return nameOrPath
		}
		return filepath.Join(root, nameOrPath)
	}
	return filepath.Join(root, l.profilesDir, nameOrPath+".yaml")
}

func (l *Loader) ListProfiles(root string) ([]domain.ProfileRef, error) {
	dir := filepath.Join(root, l.profilesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlprofile.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.ProfileRef
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}

		p := filepath.Join(dir, name)
		n := readProfileName(p)
		if n == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}
		refs = append(refs, domain.ProfileRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readProfileName(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if yaml.Unmarshal(b, &v) != nil {
		return ""
	}
	return strings.TrimSpace(v.Name)
}

type yamlProfile struct {
	Name     string       `yaml:"name"`
	Generate yamlGenerate `yaml:"generate"`
	Inputs   []yamlInput  `yaml:"inputs"`
}

type yamlGenerate struct {
	Length *int       `yaml:"length"`
	Count  *int       `yaml:"count"`
	Pad    *bool      `yaml:"pad"`
	Affix  *yamlAffix `yaml:"affix"`
}

type yamlAffix struct {
	Value    string `yaml:"value"`
	Position string `yaml:"position"`
}

type yamlInput struct {
	Label string `yaml:"label"`
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

func mapAndValidate(path string, yp yamlProfile) (domain.Profile, error) {
	if strings.TrimSpace(yp.Name) == "" {
		return domain.Profile{}, invalidField(path, "name", "profile name is required")
	}
	if len(yp.Inputs) == 0 {
		return domain.Profile{}, invalidField(path, "inputs", "at least one input is required")
	}

	p := domain.Profile{
		Name:   yp.Name,
		Inputs: make([]domain.ProfileInput, 0, len(yp.Inputs)),
		Generate: domain.GenerateOverride{
			Length: yp.Generate.Length,
			Count:  yp.Generate.Count,
			Pad:    yp.Generate.Pad,
		},
	}

	if a := yp.Generate.Affix; a != nil {
		pos, err := domain.ParseAffixPosition(a.Position)
		if err != nil {
			return domain.Profile{}, invalidField(path, "generate.affix.position", err.Error())
		}
		p.Generate.Affix = &domain.Affix{Value: a.Value, Position: pos}
	}

	for i, in := range yp.Inputs {
		prefix := fmt.Sprintf("inputs[%d]", i)

		kind, err := domain.ParseInputKind(in.Kind)
		if err != nil {
			return domain.Profile{}, invalidField(path, prefix+".kind", err.Error())
		}
		if strings.TrimSpace(in.Value) == "" {
			return domain.Profile{}, invalidField(path, prefix+".value", "value is required")
		}

		label := strings.TrimSpace(in.Label)
		if label == "" {
			label = fmt.Sprintf("%s-%d", kind, i+1)
		}
		p.Inputs = append(p.Inputs, domain.ProfileInput{
			Label: label,
			Input: domain.Input{Kind: kind, Value: in.Value},
		})
	}

	return p, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlprofile.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
