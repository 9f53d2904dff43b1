package usecase

import (
	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/ports"
	"github.com/Shan319/number-dna-analyze/internal/usecase/query"
)

// History exposes saved analyses.
type History struct {
	store ports.HistoryStore
}

func NewHistory(store ports.HistoryStore) *History {
	return &History{store: store}
}

func (uc *History) List() ([]domain.RecordRef, error) {
	return uc.store.List()
}

func (uc *History) Show(id string) (domain.Record, error) {
	return uc.store.Load(id)
}

func (uc *History) Delete(id string) error {
	return uc.store.Delete(id)
}

func (uc *History) DeleteAll() (int, error) {
	return uc.store.DeleteAll()
}

// Query evaluates a JSONPath expression against the stored record.
func (uc *History) Query(id, expr string) (string, error) {
	rec, err := uc.store.Load(id)
	if err != nil {
		return "", err
	}
	return query.Record(rec, expr)
}
