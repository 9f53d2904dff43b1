package preprocess

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

var (
	birthRe  = regexp.MustCompile(`^\d{4}/(0[1-9]|1[0-2])/(0[1-9]|[12]\d|3[01])$`)
	mobileRe = regexp.MustCompile(`^09\d{8}$`)
)

// Letter values of the national ID checksum, indexed by letter - 'A'.
var idLetterValues = [26]int{
	10, 11, 12, 13, 14, 15, 16, 17, 34, 18, 19, 20, 21,
	22, 35, 23, 24, 25, 26, 27, 28, 29, 32, 30, 31, 33,
}

var idWeights = [11]int{1, 9, 8, 7, 6, 5, 4, 3, 2, 1, 1}

// Validate checks the format of inputs whose kind has one. Name and custom
// values are accepted as-is.
func Validate(in domain.Input) error {
	v := strings.TrimSpace(in.Value)

	var err error
	switch in.Kind {
	case domain.InputID:
		err = checkNationalID(v)
	case domain.InputPhone:
		if !mobileRe.MatchString(v) {
			err = errors.New("mobile number must be 09 followed by 8 digits")
		}
	case domain.InputBirth:
		if !birthRe.MatchString(v) {
			err = errors.New("birth date must be YYYY/MM/DD")
		}
	}
	if err != nil {
		return invalidInput("preprocess.validate", fmt.Sprintf("%s %q", in.Kind, v), err)
	}
	return nil
}

func checkNationalID(s string) error {
	if len(s) != 10 {
		return fmt.Errorf("national ID must be 10 characters, got %d", len(s))
	}
	if s[0] < 'A' || s[0] > 'Z' {
		return errors.New("national ID must start with an uppercase letter")
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return errors.New("national ID must end with 9 digits")
		}
	}
	if s[1] != '1' && s[1] != '2' {
		return errors.New("national ID second character must be 1 or 2")
	}

	v := idLetterValues[s[0]-'A']
	digits := [11]int{v / 10, v % 10}
	for i := 1; i < 10; i++ {
		digits[i+1] = int(s[i] - '0')
	}

	sum := 0
	for i, d := range digits {
		sum += d * idWeights[i]
	}
	if sum%10 != 0 {
		return errors.New("national ID checksum mismatch")
	}
	return nil
}

// ValidateAffix accepts up to two letters or up to four digits.
func ValidateAffix(a domain.Affix) error {
	if !a.Active() {
		return nil
	}

	v := a.Value
	switch {
	case allOf(v, isLetter) && len(v) <= 2:
		return nil
	case allOf(v, isDigit) && len(v) <= 4:
		return nil
	}
	return invalidInput("preprocess.affix", fmt.Sprintf("affix %q", v),
		errors.New("affix must be 1-2 letters or 1-4 digits"))
}

func allOf(s string, ok func(rune) bool) bool {
	for _, r := range s {
		if !ok(r) {
			return false
		}
	}
	return s != ""
}

func invalidInput(op, what string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindInvalidInput,
		Err:  fmt.Errorf("%s: %v: %w", what, err, domain.ErrInvalidInput),
	}
}
