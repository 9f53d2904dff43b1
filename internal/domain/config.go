package domain

// Config is the workspace configuration loaded from numdna.yaml.
type Config struct {
	Generation GenerationConfig
	Input      InputConfig
	Strokes    StrokesConfig
	History    HistoryConfig
	Server     ServerConfig
	Paths      PathsConfig
}

type GenerationConfig struct {
	Length int
	Count  int
	Affix  Affix
	Pad    bool
	// Seed fixes the random source; 0 means seed from entropy.
	Seed uint64
}

type InputConfig struct {
	Validate bool
}

type StrokesConfig struct {
	Path     string
	Encoding string
}

type HistoryConfig struct {
	Enabled bool
	Encrypt bool
	KeyFile string
}

type ServerConfig struct {
	Addr string
}

type PathsConfig struct {
	HistoryDir  string
	ProfilesDir string
}

// DefaultConfig provides sane defaults if numdna.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Generation: GenerationConfig{
			Length: 4,
			Count:  5,
			Affix:  Affix{Position: AffixNone},
			Pad:    true,
		},
		Input: InputConfig{Validate: true},
		Strokes: StrokesConfig{
			Path:     "strokes/characters.txt",
			Encoding: "utf-8",
		},
		History: HistoryConfig{
			Enabled: true,
			Encrypt: true,
			KeyFile: ".numdna/secret.key",
		},
		Server: ServerConfig{Addr: "127.0.0.1:8742"},
		Paths: PathsConfig{
			HistoryDir:  "history",
			ProfilesDir: "profiles",
		},
	}
}

// GenerateRequest builds the synthesizer request from the generation defaults.
func (c Config) GenerateRequest() GenerateRequest {
	return GenerateRequest{
		Length: c.Generation.Length,
		Count:  c.Generation.Count,
		Affix:  c.Generation.Affix,
		Pad:    c.Generation.Pad,
	}
}
