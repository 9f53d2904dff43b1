package domain

import (
	"fmt"
	"strings"
)

// AffixPosition says where a fixed literal is spliced into a numeral.
type AffixPosition string

const (
	AffixNone   AffixPosition = "none"
	AffixBegin  AffixPosition = "begin"
	AffixCenter AffixPosition = "center"
	AffixEnd    AffixPosition = "end"
)

// ParseAffixPosition is case-insensitive; "" means none.
func ParseAffixPosition(s string) (AffixPosition, error) {
	switch p := AffixPosition(strings.ToLower(strings.TrimSpace(s))); p {
	case "", AffixNone:
		return AffixNone, nil
	case AffixBegin, AffixCenter, AffixEnd:
		return p, nil
	default:
		return "", fmt.Errorf("unsupported affix position %q (expected none|begin|center|end)", s)
	}
}

// Affix is a literal spliced into every generated numeral.
type Affix struct {
	Value    string        `json:"value"`
	Position AffixPosition `json:"position"`
}

// Active reports whether the affix takes part in generation.
func (a Affix) Active() bool {
	return a.Value != "" && a.Position != AffixNone && a.Position != ""
}

// GenerateRequest configures the synthesizer.
type GenerateRequest struct {
	Length int   `json:"length"`
	Count  int   `json:"count"`
	Affix  Affix `json:"affix"`

	// Pad fills a dead-ended chain with Resting pairs instead of returning a
	// short numeral.
	Pad bool `json:"pad"`
}

// Target is the number of digits the chain itself must render to.
func (r GenerateRequest) Target() int {
	if r.Affix.Active() {
		return r.Length - len(r.Affix.Value)
	}
	return r.Length
}

// Validate rejects configurations before any generation work starts.
func (r GenerateRequest) Validate() error {
	switch {
	case r.Length <= 0:
		return invalidRequest("length", fmt.Sprintf("must be positive, got %d", r.Length))
	case r.Count <= 0:
		return invalidRequest("count", fmt.Sprintf("must be positive, got %d", r.Count))
	}
	if _, err := ParseAffixPosition(string(r.Affix.Position)); err != nil {
		return invalidRequest("affix.position", err.Error())
	}
	if r.Affix.Active() && len(r.Affix.Value) >= r.Length {
		return invalidRequest("affix.value",
			fmt.Sprintf("length %d must be shorter than numeral length %d", len(r.Affix.Value), r.Length))
	}
	return nil
}

func invalidRequest(field, msg string) error {
	return &OpError{
		Op:   "generate.validate",
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, ErrInvalidConfig),
	}
}

// Budget is the compensation quota derived from the bad fields.
type Budget struct {
	Units   map[Field]int `json:"units"`
	Triples int           `json:"triples"`
}

// Clone returns an independent copy.
func (b Budget) Clone() Budget {
	out := Budget{Units: make(map[Field]int, len(b.Units)), Triples: b.Triples}
	for k, v := range b.Units {
		out.Units[k] = v
	}
	return out
}

// Remaining reports whether any single-field unit is left.
func (b Budget) Remaining() bool {
	for _, v := range b.Units {
		if v > 0 {
			return true
		}
	}
	return false
}

// Chain is a sequence of pairs where each pair starts with the digit the
// previous one ended with.
type Chain []DigitPair

// Last returns the final pair.
func (c Chain) Last() (DigitPair, bool) {
	if len(c) == 0 {
		return "", false
	}
	return c[len(c)-1], true
}

// Adjacent reports whether every neighbouring pair shares its boundary digit.
func (c Chain) Adjacent() bool {
	for i := 1; i < len(c); i++ {
		if c[i-1].Second() != c[i].First() {
			return false
		}
	}
	return true
}

// Render concatenates the chain: the first pair contributes both digits,
// every later pair only its second.
func (c Chain) Render() string {
	if len(c) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(c) + 1)
	b.WriteString(string(c[0]))
	for _, p := range c[1:] {
		b.WriteByte(p.Second())
	}
	return b.String()
}

// Candidate is one synthesized numeral.
type Candidate struct {
	Numeral string `json:"numeral"`
	Chain   Chain  `json:"chain"`

	// Requested is the length the caller asked for, affix included.
	Requested int `json:"requested"`

	// Degraded is set when growth dead-ended and the numeral is shorter
	// than Requested.
	Degraded bool `json:"degraded,omitempty"`

	// FallbackUsed is set when at least one pair was chosen ignoring the budget.
	FallbackUsed bool `json:"fallback_used,omitempty"`

	// AdjacencyBroken is set when padding had to append a pair that does
	// not continue the chain.
	AdjacencyBroken bool `json:"adjacency_broken,omitempty"`
}
