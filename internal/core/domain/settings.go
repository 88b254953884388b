package domain

import "go.trai.ch/zerr"

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "satchel.yaml"

	// MaxParallelism caps the number of concurrent expansion workers.
	MaxParallelism = 256
)

// Settings holds the parameters of one enumeration run.
// Zero values mean "not set" so that file values and flags can be layered.
type Settings struct {
	Amount      int
	Order       SortOrder
	Format      Format
	Parallelism int
}

// Merge returns s with every field that is set in override replaced.
func (s Settings) Merge(override Settings) Settings {
	if override.Amount != 0 {
		s.Amount = override.Amount
	}
	if override.Order != "" {
		s.Order = override.Order
	}
	if override.Format != "" {
		s.Format = override.Format
	}
	if override.Parallelism != 0 {
		s.Parallelism = override.Parallelism
	}
	return s
}

// Normalize fills defaults and validates the settings.
func (s Settings) Normalize() (Settings, error) {
	if s.Amount <= 0 {
		return Settings{}, zerr.With(zerr.Wrap(ErrInvalidAmount, "invalid settings"), "amount", s.Amount)
	}

	order, err := ParseSortOrder(string(s.Order))
	if err != nil {
		return Settings{}, err
	}
	s.Order = order

	format, err := ParseFormat(string(s.Format))
	if err != nil {
		return Settings{}, err
	}
	s.Format = format

	switch {
	case s.Parallelism == 0:
		s.Parallelism = 1
	case s.Parallelism < 0 || s.Parallelism > MaxParallelism:
		return Settings{}, zerr.With(zerr.Wrap(ErrInvalidParallelism, "invalid settings"), "parallelism", s.Parallelism)
	}
	return s, nil
}
