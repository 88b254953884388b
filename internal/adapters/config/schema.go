package config

// CurrentVersion is the config schema version written by this release.
const CurrentVersion = "1"

// Satchelfile represents the structure of the satchel.yaml configuration file.
type Satchelfile struct {
	Version     string `yaml:"version"`
	Amount      int    `yaml:"amount"`
	Order       string `yaml:"order"`
	Format      string `yaml:"format"`
	Parallelism int    `yaml:"parallelism"`
}
