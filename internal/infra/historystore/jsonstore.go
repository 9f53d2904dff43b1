package historystore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/infra/logger"
	"github.com/Shan319/number-dna-analyze/internal/ports"
)

const (
	defaultHistoryDir = "history"
	indexFile         = "index.jsonl"
	tsLayout          = "20060102T150405Z"

	extPlain  = ".json"
	extSealed = ".enc"
)

// JSONStore keeps one file per record under <root>/<history dir>. Files are
// named <timestamp>_<kind>_<id> so listing never has to open them.
type JSONStore struct {
	rootDir    string
	dirName    string
	sealer     ports.Sealer
	writeIndex bool
	now        func() time.Time
	newID      func() string
	log        *slog.Logger
}

type Option func(*JSONStore)

// WithSealer encrypts records at rest.
func WithSealer(s ports.Sealer) Option {
	return func(st *JSONStore) { st.sealer = s }
}

// WithIndex enables an append-only journal: <history dir>/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDs replaces the uuid generator.
func WithIDs(next func() string) Option {
	return func(s *JSONStore) { s.newID = next }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *JSONStore) { s.log = l }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.HistoryDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultHistoryDir
	}

	s := &JSONStore{
		rootDir: root,
		dirName: dir,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = logger.OrDiscard(s.log)
	return s
}

var _ ports.HistoryStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string { return filepath.Join(s.rootDir, s.dirName) }

func (s *JSONStore) Save(rec domain.Record) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{Op: "historystore.mkdir", Kind: domain.KindExecution, Path: dir, Err: err}
	}

	if rec.ID == "" {
		rec.ID = s.newID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now()
	}
	rec.CreatedAt = rec.CreatedAt.UTC()

	kind := rec.Analysis.Input.Kind
	if kind == "" {
		kind = "unknown"
	}

	ext := extPlain
	if s.sealer != nil {
		ext = extSealed
	}
	filename := fmt.Sprintf("%s_%s_%s%s", rec.CreatedAt.Format(tsLayout), kind, rec.ID, ext)
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", &domain.OpError{Op: "historystore.marshal", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if s.sealer != nil {
		if b, err = s.sealer.Seal(b); err != nil {
			return "", err
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{Op: "historystore.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{Op: "historystore.rename", Kind: domain.KindExecution, Path: path, Err: err}
	}

	s.journal("saved", rec.ID, filename, kind)
	s.log.Info("history.saved", "id", rec.ID, "file", filename, "sealed", s.sealer != nil)
	return rec.ID, nil
}

// List returns every stored record, newest first.
func (s *JSONStore) List() ([]domain.RecordRef, error) {
	entries, err := os.ReadDir(s.dir())
	if errors.Is(err, os.ErrNotExist) {
		return []domain.RecordRef{}, nil
	}
	if err != nil {
		return nil, &domain.OpError{Op: "historystore.list", Kind: domain.KindExecution, Path: s.dir(), Err: err}
	}

	refs := make([]domain.RecordRef, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ref, ok := parseName(e.Name()); ok {
			refs = append(refs, ref)
		}
	}
	domain.SortRefs(refs)
	return refs, nil
}

// Load accepts a full id or any unique prefix of one.
func (s *JSONStore) Load(id string) (domain.Record, error) {
	ref, err := s.find(id)
	if err != nil {
		return domain.Record{}, err
	}

	path := filepath.Join(s.dir(), ref.File)
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Record{}, &domain.OpError{Op: "historystore.read", Kind: domain.KindExecution, Path: path, Err: err}
	}

	if strings.HasSuffix(ref.File, extSealed) {
		if s.sealer == nil {
			return domain.Record{}, &domain.OpError{
				Op:   "historystore.read",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("record is encrypted but no key is configured: %w", domain.ErrInvalidConfig),
			}
		}
		if b, err = s.sealer.Open(b); err != nil {
			return domain.Record{}, err
		}
	}

	var rec domain.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.Record{}, &domain.OpError{Op: "historystore.unmarshal", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return rec, nil
}

func (s *JSONStore) Delete(id string) error {
	ref, err := s.find(id)
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir(), ref.File)
	if err := os.Remove(path); err != nil {
		return &domain.OpError{Op: "historystore.delete", Kind: domain.KindExecution, Path: path, Err: err}
	}

	s.journal("deleted", ref.ID, ref.File, ref.Kind)
	s.log.Info("history.deleted", "id", ref.ID)
	return nil
}

// DeleteAll removes every record and reports how many were removed.
func (s *JSONStore) DeleteAll() (int, error) {
	refs, err := s.List()
	if err != nil {
		return 0, err
	}

	n := 0
	for _, ref := range refs {
		path := filepath.Join(s.dir(), ref.File)
		if err := os.Remove(path); err != nil {
			return n, &domain.OpError{Op: "historystore.delete", Kind: domain.KindExecution, Path: path, Err: err}
		}
		s.journal("deleted", ref.ID, ref.File, ref.Kind)
		n++
	}

	s.log.Info("history.cleared", "count", n)
	return n, nil
}

func (s *JSONStore) find(id string) (domain.RecordRef, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.RecordRef{}, notFound(id, "empty id")
	}

	refs, err := s.List()
	if err != nil {
		return domain.RecordRef{}, err
	}

	var match []domain.RecordRef
	for _, ref := range refs {
		if ref.ID == id {
			return ref, nil
		}
		if strings.HasPrefix(ref.ID, id) {
			match = append(match, ref)
		}
	}

	switch len(match) {
	case 0:
		return domain.RecordRef{}, notFound(id, "no such record")
	case 1:
		return match[0], nil
	default:
		return domain.RecordRef{}, &domain.OpError{
			Op:   "historystore.find",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("id prefix %q matches %d records: %w", id, len(match), domain.ErrInvalidInput),
		}
	}
}

func notFound(id, msg string) error {
	return &domain.OpError{
		Op:   "historystore.find",
		Kind: domain.KindNotFound,
		Err:  fmt.Errorf("%s %q: %w", msg, id, domain.ErrNotFound),
	}
}

// parseName reverses the Save filename layout.
func parseName(name string) (domain.RecordRef, bool) {
	ext := filepath.Ext(name)
	if ext != extPlain && ext != extSealed {
		return domain.RecordRef{}, false
	}

	parts := strings.SplitN(strings.TrimSuffix(name, ext), "_", 3)
	if len(parts) != 3 || parts[2] == "" {
		return domain.RecordRef{}, false
	}

	ts, err := time.Parse(tsLayout, parts[0])
	if err != nil {
		return domain.RecordRef{}, false
	}

	return domain.RecordRef{
		ID:        parts[2],
		File:      name,
		Kind:      domain.InputKind(parts[1]),
		CreatedAt: ts,
	}, true
}

func (s *JSONStore) journal(event, id, filename string, kind domain.InputKind) {
	if !s.writeIndex {
		return
	}

	line, err := json.Marshal(struct {
		Event string           `json:"event"`
		ID    string           `json:"id"`
		File  string           `json:"file"`
		Kind  domain.InputKind `json:"kind"`
		At    time.Time        `json:"at"`
	}{event, id, filename, kind, s.now().UTC()})
	if err != nil {
		return
	}

	f, err := os.OpenFile(filepath.Join(s.dir(), indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		s.log.Warn("history.index_failed", "err", err)
		return
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
}
