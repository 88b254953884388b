package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/satchel/internal/core/domain"
)

func TestNewSeed(t *testing.T) {
	t.Parallel()

	seed, err := domain.NewSeed(100)
	require.NoError(t, err)
	assert.Equal(t, domain.NewSatchel(100, 0, 0, 0), seed)
	assert.Equal(t, 100, seed.Value())

	for _, amount := range []int{0, -5} {
		_, err := domain.NewSeed(amount)
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
}

func TestSatchel_GetWith(t *testing.T) {
	t.Parallel()

	s := domain.NewSatchel(50, 5, 2, 1)
	assert.Equal(t, 50, s.Get(domain.Penny))
	assert.Equal(t, 5, s.Get(domain.Nickel))
	assert.Equal(t, 2, s.Get(domain.Dime))
	assert.Equal(t, 1, s.Get(domain.Quarter))

	changed := s.With(domain.Dime, 7)
	assert.Equal(t, 7, changed.Get(domain.Dime))
	// The original value is untouched.
	assert.Equal(t, 2, s.Get(domain.Dime))
	assert.NotEqual(t, s.Key(), changed.Key())
}

func TestSatchel_Value(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, domain.Satchel{}.Value())
	assert.Equal(t, 50+25+20+25, domain.NewSatchel(50, 5, 2, 1).Value())
	assert.Equal(t, 100, domain.NewSatchel(0, 0, 0, 4).Value())
}

func TestSatchel_KeyEquality(t *testing.T) {
	t.Parallel()

	a := domain.NewSatchel(100, 0, 0, 0)
	b := domain.NewSatchel(100, 0, 0, 0)
	c := domain.NewSatchel(75, 0, 0, 1)

	assert.Equal(t, a.Key(), b.Key())
	assert.True(t, a == b)
	assert.NotEqual(t, a.Key(), c.Key())

	seen := map[domain.Key]struct{}{a.Key(): {}}
	_, ok := seen[b.Key()]
	assert.True(t, ok)
	_, ok = seen[c.Key()]
	assert.False(t, ok)
}

func TestSatchel_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "100p 0n 0d 0q", domain.NewSatchel(100, 0, 0, 0).String())
	assert.Equal(t, "0p 1n 2d 0q", domain.NewSatchel(0, 1, 2, 0).String())
}

func TestSatchel_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, domain.NewSatchel(0, 1, 2, 0).Validate(25))

	err := domain.NewSatchel(-1, 0, 0, 1).Validate(24)
	require.ErrorIs(t, err, domain.ErrNegativeCount)

	err = domain.NewSatchel(1, 0, 0, 1).Validate(25)
	require.ErrorIs(t, err, domain.ErrValueMismatch)
	assert.Contains(t, err.Error(), "1p 0n 0d 1q")
}

func TestCompare(t *testing.T) {
	t.Parallel()

	a := domain.NewSatchel(5, 0, 2, 0)
	b := domain.NewSatchel(5, 1, 0, 0)

	assert.Negative(t, domain.Compare(a, b))
	assert.Positive(t, domain.Compare(b, a))
	assert.Zero(t, domain.Compare(a, a))
}

func TestParseSatchel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  domain.Satchel
	}{
		{name: "canonical", input: "50p 5n 2d 1q", want: domain.NewSatchel(50, 5, 2, 1)},
		{name: "any order", input: "1q 2d 5n 50p", want: domain.NewSatchel(50, 5, 2, 1)},
		{name: "missing coins", input: "3q", want: domain.NewSatchel(0, 0, 0, 3)},
		{name: "extra spaces", input: "  10p   1d ", want: domain.NewSatchel(10, 0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := domain.ParseSatchel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSatchel_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "p", "5x", "-1p", "ap", "1p 2p", "1.5d"} {
		_, err := domain.ParseSatchel(input)
		require.ErrorIs(t, err, domain.ErrInvalidSatchel, "input %q", input)
	}
}

func TestParseSatchel_RoundTrip(t *testing.T) {
	t.Parallel()

	s := domain.NewSatchel(15, 2, 0, 3)
	parsed, err := domain.ParseSatchel(s.String())
	require.NoError(t, err)
	assert.Equal(t, s, parsed)
}
