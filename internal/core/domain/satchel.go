package domain

import (
	"cmp"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Key is the canonical encoding of a satchel: its counts in coin order.
// Two satchels are the same state iff their keys are equal.
type Key [NumCoins]int

// Satchel is an immutable snapshot of coin counts.
// It is a comparable value; every change produces a new Satchel.
type Satchel struct {
	counts Key
}

// NewSatchel creates a satchel from explicit counts.
func NewSatchel(pennies, nickels, dimes, quarters int) Satchel {
	return Satchel{counts: Key{pennies, nickels, dimes, quarters}}
}

// NewSeed creates the starting satchel holding the whole amount in pennies.
func NewSeed(amount int) (Satchel, error) {
	if amount <= 0 {
		return Satchel{}, zerr.With(zerr.Wrap(ErrInvalidAmount, "cannot build seed"), "amount", amount)
	}
	return Satchel{}.With(Penny, amount), nil
}

// Get returns the count of the given coin.
func (s Satchel) Get(c Coin) int {
	return s.counts[c]
}

// With returns a copy of s with the count of c replaced.
func (s Satchel) With(c Coin, count int) Satchel {
	s.counts[c] = count
	return s
}

// Value returns the weighted sum of the counts.
func (s Satchel) Value() int {
	total := 0
	for _, c := range Coins() {
		total += s.counts[c] * c.Value()
	}
	return total
}

// Key returns the canonical key of the satchel.
func (s Satchel) Key() Key {
	return s.counts
}

// Validate checks that every count is non-negative and that the value
// equals target.
func (s Satchel) Validate(target int) error {
	for _, c := range Coins() {
		if s.counts[c] < 0 {
			return zerr.With(zerr.With(zerr.Wrap(ErrNegativeCount, s.String()), "coin", c.String()), "count", s.counts[c])
		}
	}
	if v := s.Value(); v != target {
		return zerr.With(zerr.With(zerr.Wrap(ErrValueMismatch, s.String()), "value", v), "target", target)
	}
	return nil
}

// String formats the satchel as "<count><abbrev>" tokens in coin order,
// e.g. "20p 1n 0d 0q".
func (s Satchel) String() string {
	var b strings.Builder
	for i, c := range Coins() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(s.counts[c]))
		b.WriteString(c.Abbrev())
	}
	return b.String()
}

// Compare orders satchels lexicographically by canonical key.
func Compare(a, b Satchel) int {
	for i := range a.counts {
		if c := cmp.Compare(a.counts[i], b.counts[i]); c != 0 {
			return c
		}
	}
	return 0
}

// ParseSatchel parses the format produced by String.
// Tokens may appear in any order and coins that are not mentioned count as zero.
func ParseSatchel(text string) (Satchel, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Satchel{}, zerr.With(zerr.Wrap(ErrInvalidSatchel, "empty satchel"), "input", text)
	}

	var s Satchel
	var seen [NumCoins]bool
	for _, field := range fields {
		if len(field) < 2 {
			return Satchel{}, zerr.With(zerr.Wrap(ErrInvalidSatchel, "bad token"), "token", field)
		}
		c, ok := coinByAbbrev(field[len(field)-1:])
		if !ok || seen[c] {
			return Satchel{}, zerr.With(zerr.Wrap(ErrInvalidSatchel, "bad token"), "token", field)
		}
		n, err := strconv.Atoi(field[:len(field)-1])
		if err != nil || n < 0 {
			return Satchel{}, zerr.With(zerr.Wrap(ErrInvalidSatchel, "bad token"), "token", field)
		}
		seen[c] = true
		s = s.With(c, n)
	}
	return s, nil
}
