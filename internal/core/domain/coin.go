// Package domain contains the core domain models for change enumeration:
// coins, satchels, the exchange rules between coins and the sorted report.
package domain

// Coin is a denomination with a fixed face value.
// The set of coins is closed; coins are ordered by face value.
type Coin uint8

const (
	// Penny is worth 1.
	Penny Coin = iota
	// Nickel is worth 5.
	Nickel
	// Dime is worth 10.
	Dime
	// Quarter is worth 25.
	Quarter
)

// NumCoins is the number of denominations.
const NumCoins = 4

var coinValues = [NumCoins]int{1, 5, 10, 25}

var coinAbbrevs = [NumCoins]string{"p", "n", "d", "q"}

var coinNames = [NumCoins]string{"penny", "nickel", "dime", "quarter"}

// Coins returns every denomination in ascending face value order.
func Coins() []Coin {
	return []Coin{Penny, Nickel, Dime, Quarter}
}

// Value returns the face value of the coin.
func (c Coin) Value() int {
	return coinValues[c]
}

// Abbrev returns the one-letter abbreviation used in formatted satchels.
func (c Coin) Abbrev() string {
	return coinAbbrevs[c]
}

// String returns the coin name.
func (c Coin) String() string {
	if int(c) >= NumCoins {
		return "unknown"
	}
	return coinNames[c]
}

// coinByAbbrev resolves an abbreviation back to its coin.
func coinByAbbrev(s string) (Coin, bool) {
	for i, abbrev := range coinAbbrevs {
		if abbrev == s {
			return Coin(i), true
		}
	}
	return 0, false
}
