package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shan319/number-dna-analyze/internal/domain"
	"gopkg.in/yaml.v3"
)

// Encodings accepted for the stroke table file.
const (
	EncodingUTF8 = "utf-8"
	EncodingBig5 = "big5"
)

// LoadConfig loads numdna.yaml from the workspace root and applies it over
// the defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := y.apply(&cfg); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("%v: %w", err, domain.ErrInvalidConfig),
		}
	}
	return cfg, nil
}

type yamlConfig struct {
	NumDNA struct {
		Generation struct {
			Length *int    `yaml:"length"`
			Count  *int    `yaml:"count"`
			Pad    *bool   `yaml:"pad"`
			Seed   *uint64 `yaml:"seed"`
			Affix  struct {
				Value    string `yaml:"value"`
				Position string `yaml:"position"`
			} `yaml:"affix"`
		} `yaml:"generation"`

		Input struct {
			Validate *bool `yaml:"validate"`
		} `yaml:"input"`

		Strokes struct {
			Path     string `yaml:"path"`
			Encoding string `yaml:"encoding"`
		} `yaml:"strokes"`

		History struct {
			Enabled *bool  `yaml:"enabled"`
			Dir     string `yaml:"dir"`
			Encrypt *bool  `yaml:"encrypt"`
			KeyFile string `yaml:"key_file"`
		} `yaml:"history"`

		Server struct {
			Addr string `yaml:"addr"`
		} `yaml:"server"`

		Paths struct {
			ProfilesDir string `yaml:"profiles_dir"`
		} `yaml:"paths"`
	} `yaml:"numdna"`
}

func (y yamlConfig) apply(cfg *domain.Config) error {
	n := y.NumDNA

	g := n.Generation
	if g.Length != nil {
		if *g.Length <= 0 {
			return fmt.Errorf("generation.length must be positive, got %d", *g.Length)
		}
		cfg.Generation.Length = *g.Length
	}
	if g.Count != nil {
		if *g.Count <= 0 {
			return fmt.Errorf("generation.count must be positive, got %d", *g.Count)
		}
		cfg.Generation.Count = *g.Count
	}
	if g.Pad != nil {
		cfg.Generation.Pad = *g.Pad
	}
	if g.Seed != nil {
		cfg.Generation.Seed = *g.Seed
	}
	if g.Affix.Value != "" || g.Affix.Position != "" {
		pos, err := domain.ParseAffixPosition(g.Affix.Position)
		if err != nil {
			return fmt.Errorf("generation.affix.position: %v", err)
		}
		cfg.Generation.Affix = domain.Affix{Value: g.Affix.Value, Position: pos}
	}

	if n.Input.Validate != nil {
		cfg.Input.Validate = *n.Input.Validate
	}

	if n.Strokes.Path != "" {
		cfg.Strokes.Path = n.Strokes.Path
	}
	if n.Strokes.Encoding != "" {
		enc := strings.ToLower(n.Strokes.Encoding)
		switch enc {
		case EncodingUTF8, EncodingBig5:
			cfg.Strokes.Encoding = enc
		default:
			return fmt.Errorf("strokes.encoding %q (expected utf-8|big5)", n.Strokes.Encoding)
		}
	}

	h := n.History
	if h.Enabled != nil {
		cfg.History.Enabled = *h.Enabled
	}
	if h.Encrypt != nil {
		cfg.History.Encrypt = *h.Encrypt
	}
	if h.KeyFile != "" {
		cfg.History.KeyFile = h.KeyFile
	}
	if h.Dir != "" {
		cfg.Paths.HistoryDir = h.Dir
	}

	if n.Server.Addr != "" {
		cfg.Server.Addr = n.Server.Addr
	}
	if n.Paths.ProfilesDir != "" {
		cfg.Paths.ProfilesDir = n.Paths.ProfilesDir
	}
	return nil
}
