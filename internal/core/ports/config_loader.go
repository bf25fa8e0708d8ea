package ports

import "go.trai.ch/gdmcp/internal/core/domain"

// ConfigLoader defines the interface for loading the server configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the config file at path, or discovers one when path is empty,
	// and applies environment overrides. A missing file yields defaults.
	Load(path string) (*domain.Config, error)
}
