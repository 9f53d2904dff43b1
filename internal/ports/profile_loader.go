package ports

import "github.com/Shan319/number-dna-analyze/internal/domain"

// ProfileLoader loads batch profiles from a source (e.g., filesystem).
type ProfileLoader interface {
	LoadProfile(path string) (domain.Profile, error)
	ListProfiles(root string) ([]domain.ProfileRef, error)
}
