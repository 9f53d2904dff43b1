package transform

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

func pairs(ss ...string) []domain.DigitPair {
	out := make([]domain.DigitPair, 0, len(ss))
	for _, s := range ss {
		out = append(out, domain.DigitPair(s))
	}
	return out
}

func TestPairs(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []domain.DigitPair
	}{
		{"empty", "", pairs()},
		{"single digit", "7", pairs()},
		{"plain", "1234", pairs("12", "23", "34")},
		{"interior five removed", "1253", pairs("12", "23")},
		{"leading five triples next digit", "512", pairs("11", "11", "12")},
		{"trailing five doubles previous digit", "125", pairs("12", "22")},
		{"951 expands", "951", pairs("91", "19", "91")},
		{"159 expands", "1593", pairs("19", "91", "19", "93")},
		{"triplets do not overlap", "95159", pairs("91", "19", "91", "19")},
		{"zero doubles the other digit", "108", pairs("11", "88")},
		{"double zero", "1004", pairs("11", "00", "44")},
		{"five then zero", "50", pairs("00", "00")},
		{"zero then trailing five", "05", pairs("00")},
		{"all fives", "55", pairs("55", "55")},
		{"five zero five", "505", pairs("00", "00", "00")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Pairs(tc.in))
		})
	}
}

func TestExpandTriplets_ScanResumesAfterMatch(t *testing.T) {
	assert.Equal(t, "919159", expandTriplets("95159"))
	assert.Equal(t, "19199191", expandTriplets("159951"))
	assert.Equal(t, "15", expandTriplets("15"))
}

func TestRewrite_LeadingAndTrailingFiveAreAsymmetric(t *testing.T) {
	assert.Equal(t, "1112", Rewrite("512"))
	assert.Equal(t, "122", Rewrite("125"))
}

func TestPairs_LengthIsRewrittenLengthMinusOne(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 500; i++ {
		n := 2 + rng.IntN(12)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteByte(byte('0' + rng.IntN(10)))
		}
		in := b.String()

		got := Pairs(in)
		require.Len(t, got, len(Rewrite(in))-1, "input %q", in)
		for _, p := range got {
			require.True(t, p.Valid(), "input %q produced %q", in, p)
		}
	}
}

func TestPairs_WithoutSpecialDigitsKeepsLiteralPairs(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 3))
	digits := []byte("12346789")
	for i := 0; i < 500; i++ {
		n := 2 + rng.IntN(12)
		b := make([]byte, n)
		for j := range b {
			b[j] = digits[rng.IntN(len(digits))]
		}
		in := string(b)

		got := Pairs(in)
		require.Len(t, got, n-1)
		for j, p := range got {
			require.Equal(t, domain.DigitPair(in[j:j+2]), p, "input %q index %d", in, j)
		}
	}
}
