package domain

import (
	"fmt"
	"strings"
)

// CountMap tallies labels per field.
type CountMap map[Field]int

// Get returns the count for f (zero when absent).
func (c CountMap) Get(f Field) int {
	if c == nil {
		return 0
	}
	return c[f]
}

// Clone returns an independent copy.
func (c CountMap) Clone() CountMap {
	out := make(CountMap, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Positive returns a copy without entries whose count is <= 0.
func (c CountMap) Positive() CountMap {
	out := make(CountMap, len(c))
	for k, v := range c {
		if v > 0 {
			out[k] = v
		}
	}
	return out
}

// Total sums all counts.
func (c CountMap) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Tally counts labels verbatim.
func Tally(labels []Field) CountMap {
	out := CountMap{}
	for _, l := range labels {
		out[l]++
	}
	return out
}

// Rule identifies a cancellation rule of the resolver.
type Rule string

const (
	RuleOffsetDoom       Rule = "offset-doom"
	RuleOffsetSixEvils   Rule = "offset-six-evils"
	RuleAbsorbCalamity   Rule = "absorb-calamity"
	RuleAbsorbFiveGhosts Rule = "absorb-five-ghosts"
	RuleAbsorbRestingRun Rule = "absorb-resting-run"
)

// FieldDelta is a signed change applied to one field.
type FieldDelta struct {
	Field Field `json:"field"`
	Delta int   `json:"delta"`
}

func (d FieldDelta) String() string {
	return fmt.Sprintf("(%s%+d)", d.Field, d.Delta)
}

// Adjustment is one entry of the resolver log.
type Adjustment struct {
	Rule   Rule         `json:"rule"`
	Deltas []FieldDelta `json:"deltas"`
}

// String renders the entry the way it is shown to users, e.g.
// "(LifeForce-1) (Resting-1) (Calamity-1)".
func (a Adjustment) String() string {
	parts := make([]string, 0, len(a.Deltas))
	for _, d := range a.Deltas {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, " ")
}

// Resolution is the resolver output.
type Resolution struct {
	Raw      CountMap     `json:"raw"`
	Adjusted CountMap     `json:"adjusted"`
	Log      []Adjustment `json:"log"`
}

// LogLines renders the adjustment log as strings, in application order.
func (r Resolution) LogLines() []string {
	out := make([]string, 0, len(r.Log))
	for _, a := range r.Log {
		out = append(out, a.String())
	}
	return out
}
