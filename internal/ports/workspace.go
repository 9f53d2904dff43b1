package ports

import "github.com/Shan319/number-dna-analyze/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
