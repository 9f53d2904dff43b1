// Package synth grows candidate numerals whose digit pairs compensate the
// unfavourable fields left after resolution.
//
// A Synthesizer turns adjusted counts into a compensation budget once per
// call, then runs Count independent draws. Each draw grows a chain of
// adjacent pairs from an ordered strategy list (FiveGhosts triples, budgeted
// pairs, unrestricted fallback), optionally pads the chain with Resting
// pairs, renders it and splices the affix.
package synth

import (
	"math/rand/v2"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

// Rand is the random source used for every choice. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed source. Seed 0 seeds from the runtime's
// entropy source.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Synthesizer generates candidate numerals from adjusted counts.
type Synthesizer struct {
	rng        Rand
	strategies []strategy
}

// New returns a Synthesizer drawing from rng. A nil rng is replaced by an
// entropy-seeded source.
func New(rng Rand) *Synthesizer {
	if rng == nil {
		rng = NewRand(0)
	}
	return &Synthesizer{
		rng:        rng,
		strategies: defaultStrategies(),
	}
}

// Calamity shares its second unit with one of these, chosen uniformly.
var calamityShare = []domain.Field{domain.FieldLifeForce, domain.FieldResting, domain.FieldLongevity}

// Budget derives the compensation quota from adjusted counts.
func (s *Synthesizer) Budget(adjusted domain.CountMap) domain.Budget {
	units := map[domain.Field]int{}
	units[domain.FieldHeavenDoctor] += adjusted.Get(domain.FieldDoom)
	units[domain.FieldLongevity] += adjusted.Get(domain.FieldSixEvils)

	for i := 0; i < adjusted.Get(domain.FieldCalamity); i++ {
		units[domain.FieldLifeForce]++
		units[pick(s.rng, calamityShare)]++
	}

	for f, n := range units {
		if n <= 0 {
			delete(units, f)
		}
	}

	return domain.Budget{
		Units:   units,
		Triples: max(adjusted.Get(domain.FieldFiveGhosts), 0),
	}
}

// Generate validates req and returns req.Count candidates in draw order.
func (s *Synthesizer) Generate(adjusted domain.CountMap, req domain.GenerateRequest) ([]domain.Candidate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	budget := s.Budget(adjusted)

	out := make([]domain.Candidate, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		out = append(out, s.draw(budget, req))
	}
	return out, nil
}

func (s *Synthesizer) draw(budget domain.Budget, req domain.GenerateRequest) domain.Candidate {
	target := req.Target()
	g := &growth{
		rng:    s.rng,
		budget: budget.Clone(),
		need:   max(target-1, 0),
		chain:  domain.Chain{},
	}

	for len(g.chain) < g.need {
		st, ok := s.next(g)
		if !ok {
			break
		}
		g.apply(st)
	}

	if req.Pad {
		g.pad()
	}

	numeral := splice(g.chain.Render(), req.Affix, target)

	return domain.Candidate{
		Numeral:         numeral,
		Chain:           g.chain,
		Requested:       req.Length,
		Degraded:        len(numeral) < req.Length,
		FallbackUsed:    g.fallback,
		AdjacencyBroken: g.broken,
	}
}

func (s *Synthesizer) next(g *growth) (step, bool) {
	for _, try := range s.strategies {
		if st, ok := try(g); ok {
			return st, true
		}
	}
	return step{}, false
}

// splice inserts the affix into the rendered chain. Center uses
// ceil(target/2), clamped to the rendered length.
func splice(numeral string, affix domain.Affix, target int) string {
	if !affix.Active() {
		return numeral
	}

	switch affix.Position {
	case domain.AffixBegin:
		return affix.Value + numeral
	case domain.AffixEnd:
		return numeral + affix.Value
	case domain.AffixCenter:
		at := min((target+1)/2, len(numeral))
		return numeral[:at] + affix.Value + numeral[at:]
	default:
		return numeral
	}
}

func pick[T any](rng Rand, xs []T) T {
	return xs[rng.IntN(len(xs))]
}
