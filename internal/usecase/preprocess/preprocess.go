// Package preprocess turns user input into the digit string the transformer
// consumes.
package preprocess

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/ports"
)

// Digits normalizes in according to its kind. strokes is only consulted for
// name input and may be nil otherwise.
func Digits(in domain.Input, strokes ports.StrokeTable) (string, error) {
	value := strings.TrimSpace(in.Value)

	switch in.Kind {
	case domain.InputName:
		return Name(value, strokes)
	case domain.InputID:
		return Identifier(value)
	case domain.InputPhone, domain.InputBirth:
		return Plain(value)
	case domain.InputCustom:
		return Mixed(value), nil
	default:
		return "", &domain.OpError{
			Op:   "preprocess.digits",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("input kind %q: %w", in.Kind, domain.ErrInvalidInput),
		}
	}
}

// Identifier maps a leading letter to 01..26 and keeps the remaining digits.
func Identifier(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	runes := []rune(s)
	head := unicode.ToUpper(runes[0])
	if head < 'A' || head > 'Z' {
		return "", charErr("preprocess.identifier", runes[0], 0)
	}

	var b strings.Builder
	b.WriteString(letterCode(head))
	for i, r := range runes[1:] {
		if !isDigit(r) {
			return "", charErr("preprocess.identifier", r, i+1)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Plain strips date and phone separators and passes digits through.
func Plain(s string) (string, error) {
	var b strings.Builder
	for i, r := range []rune(s) {
		switch {
		case isDigit(r):
			b.WriteRune(r)
		case isSeparator(r):
		default:
			return "", charErr("preprocess.plain", r, i)
		}
	}
	return b.String(), nil
}

// Mixed maps every ASCII letter to 01..26, keeps digits and drops the rest.
func Mixed(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case isDigit(r):
			b.WriteRune(r)
		case isLetter(r):
			b.WriteString(letterCode(unicode.ToUpper(r)))
		}
	}
	return b.String()
}

// Name concatenates the stroke counts of every character. A character
// missing from the table fails the whole lookup.
func Name(s string, strokes ports.StrokeTable) (string, error) {
	if s == "" {
		return "", nil
	}
	if strokes == nil {
		return "", &domain.OpError{
			Op:   "preprocess.name",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("stroke table not loaded: %w", domain.ErrNotFound),
		}
	}

	var b strings.Builder
	for i, r := range []rune(s) {
		if unicode.IsSpace(r) {
			continue
		}
		n, ok := strokes.Strokes(r)
		if !ok {
			return "", charErr("preprocess.name", r, i)
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String(), nil
}

func charErr(op string, r rune, idx int) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindInvalidCharacter,
		Err:  &domain.CharacterError{Char: r, Index: idx},
	}
}

func letterCode(upper rune) string {
	return fmt.Sprintf("%02d", upper-'A'+1)
}

func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') }

func isSeparator(r rune) bool {
	switch r {
	case '/', '-', '.', ' ':
		return true
	}
	return false
}
