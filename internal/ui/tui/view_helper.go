package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderCounts(t Theme, c domain.CountMap) string {
	var parts []string
	for _, f := range append([]domain.Field{domain.FieldUnknown}, domain.Fields...) {
		n := c.Get(f)
		if n == 0 {
			continue
		}
		s := fmt.Sprintf("%s %s×%d", f.Label(), f, n)
		switch {
		case f.IsGood():
			s = t.Good.Render(s)
		case f.IsBad():
			s = t.Bad.Render(s)
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, "  ")
}

func renderAnalysis(t Theme, a domain.Analysis, width int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Digits: %s\n", clampString(a.Digits, width))
	if a.Empty {
		b.WriteString("\n(not enough digits to form a pair)\n")
		return b.String()
	}

	pairs := make([]string, len(a.Pairs))
	for i, p := range a.Pairs {
		pairs[i] = string(p)
	}
	fmt.Fprintf(&b, "Pairs:  %s\n\n", clampString(strings.Join(pairs, " "), width))

	b.WriteString("Raw:      " + renderCounts(t, a.Result.Raw) + "\n")
	b.WriteString("Adjusted: " + renderCounts(t, a.Result.Adjusted) + "\n")

	if lines := a.Result.LogLines(); len(lines) > 0 {
		b.WriteString("\nAdjustments:\n")
		for _, l := range lines {
			b.WriteString("  - " + clampString(l, width) + "\n")
		}
	}

	if len(a.Candidates) > 0 {
		b.WriteString("\nCandidates:\n")
		for i, c := range a.Candidates {
			fmt.Fprintf(&b, "  %d. %s", i+1, t.Numeral.Render(c.Numeral))
			if c.Degraded {
				b.WriteString(t.Help.Render("  (short)"))
			}
			b.WriteString("\n")
		}
	}

	for _, d := range a.Details() {
		fmt.Fprintf(&b, "\n%s %s: %s", d.Field.Label(), d.Field, strings.Join(d.Keywords, "、"))
	}
	return b.String()
}

func renderFields(t Theme) string {
	var b strings.Builder
	for _, f := range domain.Fields {
		name := fmt.Sprintf("%s %s", f.Label(), f)
		if f.IsGood() {
			name = t.Good.Render(name)
		} else {
			name = t.Bad.Render(name)
		}

		pairs := make([]string, 0, 8)
		for _, p := range domain.Catalogue(f) {
			pairs = append(pairs, string(p))
		}

		info := f.Info()
		fmt.Fprintf(&b, "%s  %s\n  %s\n\n", name, strings.Join(pairs, " "), strings.Join(info.Keywords, "、"))
	}
	return strings.TrimRight(b.String(), "\n")
}
