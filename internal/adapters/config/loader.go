// Package config provides the configuration loader for gdmcp.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// discoveryNames are tried in order when no config path is given.
var discoveryNames = []string{
	domain.ConfigBaseName + ".yaml",
	domain.ConfigBaseName + ".yml",
	domain.ConfigBaseName + ".toml",
}

// Loader implements ports.ConfigLoader for YAML and TOML files.
type Loader struct {
	// Getenv reads environment overrides.
	Getenv func(string) string
	// SearchDir is where config files are discovered when no path is given.
	SearchDir string
	// BaseDir anchors a relative script path. It defaults to the binary's directory.
	BaseDir string
}

// NewLoader creates a Loader reading the process environment and searching the working directory.
func NewLoader() *Loader {
	l := &Loader{Getenv: os.Getenv}
	if wd, err := os.Getwd(); err == nil {
		l.SearchDir = wd
	}
	if exe, err := os.Executable(); err == nil {
		l.BaseDir = filepath.Dir(exe)
	}
	return l
}

// Load reads the config at path. With an empty path it consults GDMCP_CONFIG and then
// discovers gdmcp.{yaml,yml,toml} in SearchDir. No file at all yields the defaults.
// Environment overrides are applied last.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	explicit := true
	if path == "" {
		path = l.getenv(domain.EnvConfig)
	}
	if path == "" {
		explicit = false
		path = l.discover()
	}

	if path != "" {
		if err := l.loadFile(path, explicit, cfg); err != nil {
			return nil, err
		}
	}

	l.applyEnv(cfg)

	if cfg.ScriptPath != "" && !filepath.IsAbs(cfg.ScriptPath) && l.BaseDir != "" {
		cfg.ScriptPath = filepath.Join(l.BaseDir, cfg.ScriptPath)
	}

	return cfg, nil
}

func (l *Loader) getenv(key string) string {
	if l.Getenv == nil {
		return ""
	}
	return l.Getenv(key)
}

func (l *Loader) discover() string {
	if l.SearchDir == "" {
		return ""
	}
	for _, name := range discoveryNames {
		candidate := filepath.Join(l.SearchDir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

func (l *Loader) loadFile(path string, explicit bool, cfg *domain.Config) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the operator
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var raw fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		_, err = toml.Decode(string(data), &raw)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigFormat, "expected .yaml, .yml or .toml"), "path", path)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	if err := raw.apply(cfg); err != nil {
		return zerr.With(err, "path", path)
	}
	cfg.Source = path
	return nil
}

func (raw *fileConfig) apply(cfg *domain.Config) error {
	if raw.GodotPath != nil {
		cfg.GodotPath = strings.TrimSpace(*raw.GodotPath)
	}
	if raw.ScriptPath != nil {
		cfg.ScriptPath = strings.TrimSpace(*raw.ScriptPath)
	}
	if raw.Debug != nil {
		cfg.Debug = *raw.Debug
	}
	if raw.DebugGodot != nil {
		cfg.DebugGodot = *raw.DebugGodot
	}
	if raw.JSONLogs != nil {
		cfg.JSONLogs = *raw.JSONLogs
	}
	if raw.MaxBufferedLines != nil {
		cfg.MaxBufferedLines = max(*raw.MaxBufferedLines, 0)
	}
	if raw.MetricsRetention != nil && *raw.MetricsRetention > 0 {
		cfg.MetricsRetention = *raw.MetricsRetention
	}
	if raw.MetricsAddr != nil {
		cfg.MetricsAddr = strings.TrimSpace(*raw.MetricsAddr)
	}
	if raw.WatchExecutable != nil {
		cfg.WatchExecutable = *raw.WatchExecutable
	}

	var err error
	if cfg.CacheTTL, err = parseDuration("cache_ttl", raw.CacheTTL, cfg.CacheTTL); err != nil {
		return err
	}
	if cfg.VersionTimeout, err = parseDuration("version_timeout", raw.VersionTimeout, cfg.VersionTimeout); err != nil {
		return err
	}
	return nil
}

func parseDuration(key string, raw *string, fallback time.Duration) (time.Duration, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(*raw))
	if err != nil || d <= 0 {
		return 0, zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "invalid duration"), "key", key), "value", *raw)
	}
	return d, nil
}

func (l *Loader) applyEnv(cfg *domain.Config) {
	if v := strings.TrimSpace(l.getenv(domain.EnvGodotPath)); v != "" {
		cfg.GodotPath = v
	}
	if l.getenv(domain.EnvDebug) == "true" {
		cfg.Debug = true
	}
	if v := strings.TrimSpace(l.getenv(domain.EnvMetricsAddr)); v != "" {
		cfg.MetricsAddr = v
	}
}
