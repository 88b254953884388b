package domain

// Pair is an ordered pair of coins for an exchange from Low into High.
type Pair struct {
	Low  Coin
	High Coin
}

// String returns "<low> -> <high>".
func (p Pair) String() string {
	return p.Low.String() + " -> " + p.High.String()
}

// bridgeRule describes an exchange between two coins whose values are not
// commensurable. One High is made from LowUnits of Low plus ViaUnits of Via.
type bridgeRule struct {
	Via      Coin
	ViaUnits int
	LowUnits int
}

// bridgeRules lists the pairs that cannot be exchanged by integer ratio.
// 2 dimes + 1 nickel = 1 quarter.
var bridgeRules = map[Pair]bridgeRule{
	{Low: Dime, High: Quarter}: {Via: Nickel, ViaUnits: 1, LowUnits: 2},
}

// Pairs returns every ordered pair with Low worth less than High, in coin order.
func Pairs() []Pair {
	coins := Coins()
	pairs := make([]Pair, 0, len(coins)*(len(coins)-1)/2)
	for i, low := range coins {
		for _, high := range coins[i+1:] {
			pairs = append(pairs, Pair{Low: low, High: high})
		}
	}
	return pairs
}

// Exchange applies the minimal substitution that trades smaller coins for one
// more high coin. It reports false when no such substitution is possible.
func Exchange(s Satchel, low, high Coin) (Satchel, bool) {
	if low.Value() >= high.Value() {
		return Satchel{}, false
	}

	if rule, ok := bridgeRules[Pair{Low: low, High: high}]; ok {
		if s.Get(rule.Via) < rule.ViaUnits || s.Get(low) < rule.LowUnits {
			return Satchel{}, false
		}
		return s.
			With(rule.Via, s.Get(rule.Via)-rule.ViaUnits).
			With(low, s.Get(low)-rule.LowUnits).
			With(high, s.Get(high)+1), true
	}

	if high.Value()%low.Value() != 0 {
		return Satchel{}, false
	}
	if s.Get(low)*low.Value() < high.Value() {
		return Satchel{}, false
	}
	ratio := high.Value() / low.Value()
	return s.
		With(low, s.Get(low)-ratio).
		With(high, s.Get(high)+1), true
}

// Reverse undoes Exchange: it breaks one high coin back into the coins the
// exchange consumed. It reports false when s holds no high coin or the pair
// has no exchange rule.
func Reverse(s Satchel, low, high Coin) (Satchel, bool) {
	if low.Value() >= high.Value() || s.Get(high) < 1 {
		return Satchel{}, false
	}

	if rule, ok := bridgeRules[Pair{Low: low, High: high}]; ok {
		return s.
			With(high, s.Get(high)-1).
			With(low, s.Get(low)+rule.LowUnits).
			With(rule.Via, s.Get(rule.Via)+rule.ViaUnits), true
	}

	if high.Value()%low.Value() != 0 {
		return Satchel{}, false
	}
	ratio := high.Value() / low.Value()
	return s.
		With(high, s.Get(high)-1).
		With(low, s.Get(low)+ratio), true
}

// Move is the outcome of trying one pair on a satchel.
type Move struct {
	Pair Pair
	From Satchel
	To   Satchel
	OK   bool
}

// Moves tries every pair on s, keeping infeasible pairs with OK unset.
func Moves(s Satchel) []Move {
	pairs := Pairs()
	moves := make([]Move, 0, len(pairs))
	for _, p := range pairs {
		to, ok := Exchange(s, p.Low, p.High)
		moves = append(moves, Move{Pair: p, From: s, To: to, OK: ok})
	}
	return moves
}
