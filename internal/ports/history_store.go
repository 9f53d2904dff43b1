package ports

import "github.com/Shan319/number-dna-analyze/internal/domain"

// HistoryStore persists analysis records.
type HistoryStore interface {
	Save(rec domain.Record) (id string, err error)
	List() ([]domain.RecordRef, error)
	Load(id string) (domain.Record, error)
	Delete(id string) error
	DeleteAll() (int, error)
}
