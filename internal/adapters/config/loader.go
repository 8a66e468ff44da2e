// Package config provides the configuration loader for nbreq.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// Filename is the configuration file looked up in the working directory.
	Filename = "nbreq.yaml"

	// EnvConfigPath overrides the location of the configuration file.
	EnvConfigPath = "NBREQ_CONFIG"
)

// Defaults returns the configuration used when no file overrides it.
func Defaults() domain.Config {
	return domain.Config{
		KernelName:         domain.DefaultKernelName,
		RecommendationType: domain.DefaultRecommendationType,
		EnvironmentsDir:    "~/.local/share/thoth/kernels",
		Python:             "python3",
		JournalPath:        filepath.Join(".nbreq", "journal.json"),
		Commands: domain.Commands{
			Advise:    []string{"thamos", "advise", "--json"},
			Lock:      []string{"pipenv", "lock"},
			Bootstrap: []string{"-m", "pip", "install", "--upgrade", "pip", "micropipenv", "ipykernel"},
			Install:   []string{"-m", "micropipenv", "install"},
			Discover:  []string{"-m", "pip", "list", "--format=json"},
			Kernel:    []string{"-m", "ipykernel", "install", "--user", "--name"},
		},
	}
}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration for the given working directory. The file
// named by NBREQ_CONFIG is used when set, nbreq.yaml in cwd otherwise.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = filepath.Join(cwd, Filename)
	}

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("no configuration file at " + path + ", using defaults")
		defaults := Defaults()
		cfg = &defaults
	} else if err != nil {
		return nil, err
	}

	return resolvePaths(cfg, cwd)
}

// Load reads a configuration file and merges it over the defaults.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Configfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	cfg := Defaults()
	if file.KernelName != "" {
		cfg.KernelName = file.KernelName
	}
	if file.RecommendationType != "" {
		rt, err := domain.ParseRecommendationType(file.RecommendationType)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		cfg.RecommendationType = rt
	}
	if file.EnvironmentsDir != "" {
		cfg.EnvironmentsDir = file.EnvironmentsDir
	}
	if file.Python != "" {
		cfg.Python = file.Python
	}
	if file.Journal != "" {
		cfg.JournalPath = file.Journal
	}
	override(&cfg.Commands.Advise, file.Commands.Advise)
	override(&cfg.Commands.Lock, file.Commands.Lock)
	override(&cfg.Commands.Bootstrap, file.Commands.Bootstrap)
	override(&cfg.Commands.Install, file.Commands.Install)
	override(&cfg.Commands.Discover, file.Commands.Discover)
	override(&cfg.Commands.Kernel, file.Commands.Kernel)

	return &cfg, nil
}

func override(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = src
	}
}

// resolvePaths expands a leading ~ in the environments directory and makes
// the journal path absolute relative to cwd.
func resolvePaths(cfg *domain.Config, cwd string) (*domain.Config, error) {
	if rest, ok := strings.CutPrefix(cfg.EnvironmentsDir, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to resolve home directory")
		}
		cfg.EnvironmentsDir = filepath.Join(home, rest)
	}
	if !filepath.IsAbs(cfg.JournalPath) {
		cfg.JournalPath = filepath.Join(cwd, cfg.JournalPath)
	}
	return cfg, nil
}
