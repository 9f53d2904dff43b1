package usecase

import (
	"errors"
	"strings"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

type strokeMap map[rune]int

func (m strokeMap) Strokes(r rune) (int, bool) {
	n, ok := m[r]
	return n, ok
}

type fakeStore struct {
	saved   []domain.Record
	saveErr error
}

func (s *fakeStore) Save(rec domain.Record) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	if rec.ID == "" {
		rec.ID = "rec-" + string(rune('1'+len(s.saved)))
	}
	s.saved = append(s.saved, rec)
	return rec.ID, nil
}

func (s *fakeStore) List() ([]domain.RecordRef, error) {
	out := make([]domain.RecordRef, 0, len(s.saved))
	for _, r := range s.saved {
		out = append(out, domain.RecordRef{ID: r.ID, Kind: r.Analysis.Input.Kind, CreatedAt: r.CreatedAt})
	}
	return out, nil
}

func (s *fakeStore) Load(id string) (domain.Record, error) {
	for _, r := range s.saved {
		if strings.HasPrefix(r.ID, id) {
			return r, nil
		}
	}
	return domain.Record{}, &domain.OpError{Op: "fake.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
}

func (s *fakeStore) Delete(id string) error {
	for i, r := range s.saved {
		if r.ID == id {
			s.saved = append(s.saved[:i], s.saved[i+1:]...)
			return nil
		}
	}
	return &domain.OpError{Op: "fake.delete", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
}

func (s *fakeStore) DeleteAll() (int, error) {
	n := len(s.saved)
	s.saved = nil
	return n, nil
}

type fakeProfiles struct {
	prof domain.Profile
	err  error
}

func (f fakeProfiles) LoadProfile(_ string) (domain.Profile, error) {
	if f.err != nil {
		return domain.Profile{}, f.err
	}
	return f.prof, nil
}

func (f fakeProfiles) ListProfiles(_ string) ([]domain.ProfileRef, error) {
	return nil, errors.New("not used")
}
