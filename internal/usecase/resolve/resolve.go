// Package resolve tallies a label sequence and applies the cancellation rules
// that let favourable fields absorb unfavourable ones.
//
// Rules run in a fixed order over the positional labels as classified, not
// over the shrinking counts:
//
//  1. HeavenDoctor offsets Doom one for one.
//  2. Longevity offsets SixEvils one for one.
//  3. Adjacent HeavenDoctor/HeavenDoctor, HeavenDoctor/Longevity,
//     LifeForce/Resting and Longevity/LifeForce pairs each absorb one Calamity.
//  4. A LifeForce, HeavenDoctor, Longevity run absorbs one FiveGhosts.
//  5. A run of Resting labels is folded into the field right before it.
//
// Rule 5 skips positions consumed by rule 3. Rule 4 does not look at them,
// so a position can take part in both rule 3 and rule 4.
package resolve

import "github.com/Shan319/number-dna-analyze/internal/domain"

type state struct {
	counts   domain.CountMap
	consumed map[int]bool
	log      []domain.Adjustment
}

type rule func(labels []domain.Field, st state) state

var rules = []rule{
	offset(domain.RuleOffsetDoom, domain.FieldHeavenDoctor, domain.FieldDoom),
	offset(domain.RuleOffsetSixEvils, domain.FieldLongevity, domain.FieldSixEvils),
	absorbCalamity,
	absorbFiveGhosts,
	absorbRestingRun,
}

// Resolve returns raw counts, adjusted counts and the ordered adjustment log.
func Resolve(labels []domain.Field) domain.Resolution {
	raw := domain.Tally(labels)

	st := state{
		counts:   raw.Clone(),
		consumed: map[int]bool{},
		log:      []domain.Adjustment{},
	}
	for _, r := range rules {
		st = r(labels, st)
	}

	return domain.Resolution{
		Raw:      raw,
		Adjusted: st.counts.Positive(),
		Log:      st.log,
	}
}

func offset(name domain.Rule, good, bad domain.Field) rule {
	return func(_ []domain.Field, st state) state {
		k := min(st.counts.Get(good), st.counts.Get(bad))
		if k <= 0 {
			return st
		}
		st.counts[good] -= k
		st.counts[bad] -= k
		st.log = append(st.log,
			domain.Adjustment{Rule: name, Deltas: []domain.FieldDelta{{Field: good, Delta: -k}}},
			domain.Adjustment{Rule: name, Deltas: []domain.FieldDelta{{Field: bad, Delta: -k}}},
		)
		return st
	}
}

type labelPair struct{ a, b domain.Field }

var calamityAbsorbers = map[labelPair]bool{
	{domain.FieldHeavenDoctor, domain.FieldHeavenDoctor}: true,
	{domain.FieldHeavenDoctor, domain.FieldLongevity}:    true,
	{domain.FieldLifeForce, domain.FieldResting}:         true,
	{domain.FieldLongevity, domain.FieldLifeForce}:       true,
}

func absorbCalamity(labels []domain.Field, st state) state {
	i := 0
	for i+1 < len(labels) {
		p := labelPair{labels[i], labels[i+1]}
		// Spent fields skip the match; its positions stay free for rule 5.
		if !calamityAbsorbers[p] || st.counts.Get(domain.FieldCalamity) <= 0 || !available(st.counts, p.a, p.b) {
			i++
			continue
		}

		st.counts[p.a]--
		st.counts[p.b]--
		st.counts[domain.FieldCalamity]--
		st.log = append(st.log, domain.Adjustment{
			Rule: domain.RuleAbsorbCalamity,
			Deltas: []domain.FieldDelta{
				{Field: p.a, Delta: -1},
				{Field: p.b, Delta: -1},
				{Field: domain.FieldCalamity, Delta: -1},
			},
		})
		st.consumed[i] = true
		st.consumed[i+1] = true
		i += 2
	}
	return st
}

var ghostAbsorber = [3]domain.Field{domain.FieldLifeForce, domain.FieldHeavenDoctor, domain.FieldLongevity}

func absorbFiveGhosts(labels []domain.Field, st state) state {
	i := 0
	for i+2 < len(labels) {
		match := labels[i] == ghostAbsorber[0] &&
			labels[i+1] == ghostAbsorber[1] &&
			labels[i+2] == ghostAbsorber[2]
		// Spent fields skip the match without consuming anything.
		if !match || st.counts.Get(domain.FieldFiveGhosts) <= 0 || !available(st.counts, ghostAbsorber[:]...) {
			i++
			continue
		}

		deltas := make([]domain.FieldDelta, 0, 4)
		for _, f := range ghostAbsorber {
			st.counts[f]--
			deltas = append(deltas, domain.FieldDelta{Field: f, Delta: -1})
		}
		st.counts[domain.FieldFiveGhosts]--
		deltas = append(deltas, domain.FieldDelta{Field: domain.FieldFiveGhosts, Delta: -1})

		st.log = append(st.log, domain.Adjustment{Rule: domain.RuleAbsorbFiveGhosts, Deltas: deltas})
		i += 3
	}
	return st
}

func absorbRestingRun(labels []domain.Field, st state) state {
	i := 0
	for i+1 < len(labels) {
		if st.consumed[i] || labels[i] == domain.FieldResting {
			i++
			continue
		}

		j := i + 1
		for j < len(labels) && labels[j] == domain.FieldResting && !st.consumed[j] {
			j++
		}
		r := j - i - 1

		if r == 0 || st.counts.Get(domain.FieldResting) < r {
			i++
			continue
		}

		head := labels[i]
		st.counts[head] += r
		st.counts[domain.FieldResting] -= r
		st.log = append(st.log, domain.Adjustment{
			Rule: domain.RuleAbsorbRestingRun,
			Deltas: []domain.FieldDelta{
				{Field: head, Delta: r},
				{Field: domain.FieldResting, Delta: -r},
			},
		})
		for k := i; k < j; k++ {
			st.consumed[k] = true
		}
		i = j
	}
	return st
}

// available reports whether every listed field can give up one unit,
// counting repeats.
func available(counts domain.CountMap, fields ...domain.Field) bool {
	need := make(map[domain.Field]int, len(fields))
	for _, f := range fields {
		need[f]++
	}
	for f, n := range need {
		if counts.Get(f) < n {
			return false
		}
	}
	return true
}
