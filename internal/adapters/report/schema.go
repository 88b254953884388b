package report

import "go.trai.ch/satchel/internal/core/domain"

// Document is the structured form of a report.
type Document struct {
	Amount      int          `json:"amount"      yaml:"amount"`
	Count       int          `json:"count"       yaml:"count"`
	Rounds      int          `json:"rounds"      yaml:"rounds"`
	Order       string       `json:"order"       yaml:"order"`
	Fingerprint string       `json:"fingerprint" yaml:"fingerprint"`
	Satchels    []SatchelDTO `json:"satchels"    yaml:"satchels"`
}

// SatchelDTO holds the coin counts of one satchel.
type SatchelDTO struct {
	Pennies  int `json:"p" yaml:"p"`
	Nickels  int `json:"n" yaml:"n"`
	Dimes    int `json:"d" yaml:"d"`
	Quarters int `json:"q" yaml:"q"`
}

func newDocument(report *domain.Report) Document {
	satchels := make([]SatchelDTO, 0, len(report.Satchels))
	for _, s := range report.Satchels {
		satchels = append(satchels, SatchelDTO{
			Pennies:  s.Get(domain.Penny),
			Nickels:  s.Get(domain.Nickel),
			Dimes:    s.Get(domain.Dime),
			Quarters: s.Get(domain.Quarter),
		})
	}

	return Document{
		Amount:      report.Amount,
		Count:       report.Count(),
		Rounds:      report.Rounds,
		Order:       string(report.Order),
		Fingerprint: report.Fingerprint,
		Satchels:    satchels,
	}
}
