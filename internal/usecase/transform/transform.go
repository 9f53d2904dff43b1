// Package transform turns a normalized digit string into the ordered digit
// pairs the classifier works on.
//
// The rewrite runs in a fixed order: the 951/159 triplet rewrite, removal
// of interior 5s, the leading-5 rule, the trailing-5 rule, and finally
// pairing with the 0/5 substitutions. The leading rule triples the digit
// after the 5 while the trailing rule only doubles the digit before it;
// both are kept as-is.
package transform

import (
	"strings"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

// Pairs rewrites digits and splits the result into overlapping pairs.
// Inputs shorter than two characters yield an empty slice.
func Pairs(digits string) []domain.DigitPair {
	s := Rewrite(digits)
	if len(s) < 2 {
		return []domain.DigitPair{}
	}

	out := make([]domain.DigitPair, 0, len(s)-1)
	for i := 0; i+1 < len(s); i++ {
		out = append(out, pairFor(s[i], s[i+1]))
	}
	return out
}

// Rewrite applies the 5-handling steps and returns the string that gets paired.
func Rewrite(digits string) string {
	s := expandTriplets(digits)

	if len(s) > 2 {
		s = s[:1] + strings.ReplaceAll(s[1:len(s)-1], "5", "") + s[len(s)-1:]
	}

	if len(s) >= 2 {
		if s[0] == '5' {
			d := s[1:2]
			s = d + d + s[1:]
		}
		if s[len(s)-1] == '5' {
			d := s[len(s)-2 : len(s)-1]
			s = s[:len(s)-2] + d + d
		}
	}
	return s
}

// expandTriplets rewrites 951 -> 9191 and 159 -> 1919, scanning left to right
// without overlap.
func expandTriplets(s string) string {
	if len(s) < 3 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3)

	i := 0
	for i < len(s)-2 {
		switch s[i : i+3] {
		case "951":
			b.WriteString("9191")
			i += 3
		case "159":
			b.WriteString("1919")
			i += 3
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	b.WriteString(s[i:])
	return b.String()
}

func pairFor(a, b byte) domain.DigitPair {
	switch {
	case (a == '0' && b != '5') || (b == '0' && a != '5'):
		if a == '0' {
			return domain.PairOf(b, b)
		}
		return domain.PairOf(a, a)
	case (a == '5' && b == '0') || (a == '0' && b == '5'):
		return "00"
	case a == '5':
		return domain.PairOf(b, b)
	case b == '5':
		return domain.PairOf(a, a)
	default:
		return domain.PairOf(a, b)
	}
}
