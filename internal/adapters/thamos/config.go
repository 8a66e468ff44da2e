package thamos

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFilename is the resolver configuration file in a kernel directory.
	ConfigFilename = ".thoth.yaml"

	// DefaultHost is the resolver service used when no configuration exists.
	DefaultHost = "khemenu.thoth-station.ninja"
)

// DefaultConfig returns the resolver configuration for a kernel without a
// configuration file.
func DefaultConfig(kernelName string) domain.ResolverConfig {
	return domain.ResolverConfig{
		Host:               DefaultHost,
		TLSVerify:          false,
		RequirementsFormat: "pipenv",
		RuntimeEnvironments: []domain.RuntimeEnvironment{
			{
				Name: kernelName,
				OperatingSystem: domain.OperatingSystem{
					Name:    "rhel",
					Version: "8",
				},
				RecommendationType: domain.DefaultRecommendationType,
			},
		},
	}
}

// ConfigSource implements ports.ConfigSource over the .thoth.yaml file of
// each kernel directory.
type ConfigSource struct {
	cfg    *domain.Config
	logger ports.Logger
}

var _ ports.ConfigSource = (*ConfigSource)(nil)

// NewConfigSource creates a new ConfigSource.
func NewConfigSource(cfg *domain.Config, logger ports.Logger) *ConfigSource {
	return &ConfigSource{
		cfg:    cfg,
		logger: logger,
	}
}

// RetrieveConfig reads the kernel's resolver configuration, falling back to
// DefaultConfig when the kernel has none.
func (s *ConfigSource) RetrieveConfig(ctx context.Context, kernelName string) (*domain.ResolverConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := domain.ValidateKernelName(kernelName); err != nil {
		return nil, err
	}

	path := filepath.Join(s.cfg.KernelDir(kernelName), ConfigFilename)
	//nolint:gosec // path is derived from configuration
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no resolver configuration at " + path + ", using defaults")
		cfg := DefaultConfig(kernelName)
		return &cfg, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read resolver configuration"), "path", path)
	}

	var cfg domain.ResolverConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse resolver configuration"), "path", path)
	}
	return &cfg, nil
}

// WriteConfig writes cfg as the resolver configuration of dir.
func WriteConfig(dir string, cfg domain.ResolverConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return zerr.Wrap(err, "failed to encode resolver configuration")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}
	path := filepath.Join(dir, ConfigFilename)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write resolver configuration"), "path", path)
	}
	return nil
}
