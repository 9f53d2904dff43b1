package synth

import "github.com/Shan319/number-dna-analyze/internal/domain"

// growth is the per-draw state: the chain so far and the budget left.
type growth struct {
	rng    Rand
	budget domain.Budget
	need   int
	chain  domain.Chain

	noTriples bool
	fallback  bool
	broken    bool
}

// step is what a strategy proposes to append.
type step struct {
	pairs    []domain.DigitPair
	field    domain.Field // budget unit consumed; FieldUnknown for none
	triple   bool
	fallback bool
}

// strategy proposes the next step, or reports false to defer to the next one.
type strategy func(g *growth) (step, bool)

func defaultStrategies() []strategy {
	return []strategy{tripleStep, budgetedStep, fallbackStep}
}

// Candidate pools are enumerated in this order.
var poolFields = []domain.Field{
	domain.FieldHeavenDoctor,
	domain.FieldLifeForce,
	domain.FieldResting,
	domain.FieldLongevity,
}

var pools = func() map[domain.Field][]domain.DigitPair {
	out := make(map[domain.Field][]domain.DigitPair, len(poolFields))
	for _, f := range poolFields {
		out[f] = domain.Catalogue(f)
	}
	return out
}()

// ghostTriples holds every LifeForce, HeavenDoctor, Longevity pair triple
// that chains internally.
var ghostTriples = func() [][]domain.DigitPair {
	var out [][]domain.DigitPair
	for _, a := range pools[domain.FieldLifeForce] {
		for _, b := range pools[domain.FieldHeavenDoctor] {
			if a.Second() != b.First() {
				continue
			}
			for _, c := range pools[domain.FieldLongevity] {
				if b.Second() == c.First() {
					out = append(out, []domain.DigitPair{a, b, c})
				}
			}
		}
	}
	return out
}()

func (g *growth) remaining() int { return g.need - len(g.chain) }

// follows reports whether p may be appended without breaking adjacency.
func (g *growth) follows(p domain.DigitPair) bool {
	last, ok := g.chain.Last()
	return !ok || last.Second() == p.First()
}

func (g *growth) apply(st step) {
	g.chain = append(g.chain, st.pairs...)
	if st.triple {
		g.budget.Triples--
	}
	if st.field != domain.FieldUnknown {
		g.budget.Units[st.field]--
	}
	if st.fallback {
		g.fallback = true
	}
}

// pad fills the shortfall with Resting pairs, preferring ones that continue
// the chain.
func (g *growth) pad() {
	resting := pools[domain.FieldResting]
	for len(g.chain) < g.need {
		var match []domain.DigitPair
		for _, p := range resting {
			if g.follows(p) {
				match = append(match, p)
			}
		}
		if len(match) == 0 {
			g.chain = append(g.chain, pick(g.rng, resting))
			g.broken = true
			continue
		}
		g.chain = append(g.chain, pick(g.rng, match))
	}
}

// tripleStep splices a LifeForce, HeavenDoctor, Longevity triple while
// FiveGhosts units remain. The first failure disables triples for the draw.
func tripleStep(g *growth) (step, bool) {
	if g.noTriples || g.budget.Triples <= 0 {
		return step{}, false
	}
	if g.remaining() < 3 {
		g.noTriples = true
		return step{}, false
	}

	var options [][]domain.DigitPair
	for _, t := range ghostTriples {
		if g.follows(t[0]) {
			options = append(options, t)
		}
	}
	if len(options) == 0 {
		g.noTriples = true
		return step{}, false
	}
	return step{pairs: pick(g.rng, options), triple: true}, true
}

type fieldPair struct {
	field domain.Field
	pair  domain.DigitPair
}

func budgetedStep(g *growth) (step, bool) {
	var options []fieldPair
	for _, f := range poolFields {
		if g.budget.Units[f] <= 0 {
			continue
		}
		for _, p := range pools[f] {
			if g.follows(p) {
				options = append(options, fieldPair{f, p})
			}
		}
	}
	if len(options) == 0 {
		return step{}, false
	}
	c := pick(g.rng, options)
	return step{pairs: []domain.DigitPair{c.pair}, field: c.field}, true
}

// fallbackStep ignores the budget but only runs while some budget is left;
// once it is spent growth stops and padding takes over.
func fallbackStep(g *growth) (step, bool) {
	if !g.budget.Remaining() {
		return step{}, false
	}

	var options []domain.DigitPair
	for _, f := range poolFields {
		for _, p := range pools[f] {
			if g.follows(p) {
				options = append(options, p)
			}
		}
	}
	if len(options) == 0 {
		return step{}, false
	}
	return step{pairs: []domain.DigitPair{pick(g.rng, options)}, fallback: true}, true
}
