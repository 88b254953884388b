package ports

import "go.trai.ch/satchel/internal/core/domain"

// ConfigLoader defines the interface for loading enumeration settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file at path.
	// When required is false a missing file yields empty settings instead of an error.
	Load(path string, required bool) (domain.Settings, error)
}
