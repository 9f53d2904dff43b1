// Package classify labels digit pairs with their field.
package classify

import "github.com/Shan319/number-dna-analyze/internal/domain"

// Labels maps every pair to its field, position by position.
func Labels(pairs []domain.DigitPair) []domain.Field {
	out := make([]domain.Field, len(pairs))
	for i, p := range pairs {
		out[i] = domain.FieldOf(p)
	}
	return out
}
